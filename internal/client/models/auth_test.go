package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr string
	}{
		{name: "valid", req: LoginRequest{Email: "a@b.com", Password: "x"}},
		{name: "missing email", req: LoginRequest{Password: "x"}, wantErr: "invalid email: required"},
		{name: "missing password", req: LoginRequest{Email: "a@b.com"}, wantErr: "invalid password: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Email:           "a@b.com",
		Password:        "secret",
		ConfirmPassword: "secret",
		FirstName:       "A",
		LastName:        "B",
		Currency:        "USD",
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid.Validate())
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := valid
		req.ConfirmPassword = "other"
		err := req.Validate()
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "confirmPassword", ve.Field)
	})

	t.Run("missing currency", func(t *testing.T) {
		req := valid
		req.Currency = ""
		require.Error(t, req.Validate())
	})
}

func TestUser_FullName(t *testing.T) {
	require.Equal(t, "Ann Brown", User{FirstName: "Ann", LastName: "Brown"}.FullName())
	require.Equal(t, "Ann", User{FirstName: "Ann"}.FullName())
}
