// Package models defines the wire types exchanged with the ManageMyMoney
// API and the validation rules applied before a request leaves the client.
package models

import "strings"

// User is the authenticated-user profile as returned by the API and as
// cached locally between runs.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks required fields before any network call is made.
func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	return nil
}

// RegisterRequest is the registration payload. VerificationURL is filled in
// by the session manager before submission; the backend embeds it in the
// account-verification email.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Currency        string `json:"currency"`
	VerificationURL string `json:"verificationUrl,omitempty"`
}

// Validate checks required fields and the password confirmation before any
// network call is made.
func (r RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Reason: "required"}
	}
	if r.Password != r.ConfirmPassword {
		return &ValidationError{Field: "confirmPassword", Reason: "does not match password"}
	}
	if r.FirstName == "" {
		return &ValidationError{Field: "firstName", Reason: "required"}
	}
	if r.Currency == "" {
		return &ValidationError{Field: "currency", Reason: "required"}
	}
	return nil
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Currency  string `json:"currency"`
}

func (r UpdateProfileRequest) Validate() error {
	if r.FirstName == "" {
		return &ValidationError{Field: "firstName", Reason: "required"}
	}
	if r.Currency == "" {
		return &ValidationError{Field: "currency", Reason: "required"}
	}
	return nil
}

// AuthResponse is the payload of successful login and register calls.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresAt    string `json:"expiresAt"`
	User         User   `json:"user"`
}
