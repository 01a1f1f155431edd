package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dvalero/finwallet/internal/client/api"
	"github.com/dvalero/finwallet/internal/client/models"
)

// getSimpleText, getPassword and getAmount are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getAmount = GetAmount

func (a *App) getStatus() string {
	if s := a.session.State(); s.Authenticated() {
		return fmt.Sprintf("(%s)", s.User.Email)
	}
	return "(anonymous)"
}

// Register prompts for the registration fields and attempts to create a new
// account. On success the user is logged in immediately and the session is
// persisted locally.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}

	var err error
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if req.Password, err = getPassword(os.Stdout, "Enter password"); err != nil {
		return err
	}
	if req.ConfirmPassword, err = getPassword(os.Stdout, "Confirm password"); err != nil {
		return err
	}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if req.Currency, err = getSimpleText(a.reader, "Enter currency (e.g. USD)", os.Stdout); err != nil {
		return err
	}

	if err := a.session.Register(ctx, req); err != nil {
		printlnFn("Registration failed:", err.Error())
		return err
	}

	printlnFn("Welcome,", a.session.State().User.FullName()+"!")
	return nil
}

// Login prompts for credentials and tries to authenticate. Validation errors
// and server rejections are reported to the user; a nil return means the
// session is now authenticated and persisted.
func (a *App) Login(ctx context.Context) error {
	req := models.LoginRequest{}

	var err error
	if req.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if req.Password, err = getPassword(os.Stdout, "Enter password"); err != nil {
		return err
	}

	if err := a.session.Login(ctx, req); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			printlnFn("Server unavailable, please try again later")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn("Welcome back,", a.session.State().User.FullName()+"!")
	return nil
}

// Logout discards the local session. It never fails; a storage hiccup only
// means the next start may briefly see stale credentials.
func (a *App) Logout(ctx context.Context) error {
	a.loggingOut.Store(true)
	a.session.Logout(ctx)
	a.loggingOut.Store(false)
	printlnFn("Logged out")
	return nil
}

// Profile shows the cached user profile and optionally updates it.
func (a *App) Profile(ctx context.Context) error {
	state := a.session.State()
	if !state.Authenticated() {
		printlnFn("Not logged in")
		return nil
	}

	user := state.User
	printlnFn(fmt.Sprintf("Name: %s\nEmail: %s\nCurrency: %s", user.FullName(), user.Email, user.Currency))

	answer, err := getSimpleText(a.reader, "Update profile? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" {
		return nil
	}

	req := models.UpdateProfileRequest{}
	if req.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if req.Currency, err = getSimpleText(a.reader, "Enter currency", os.Stdout); err != nil {
		return err
	}

	if err := a.session.UpdateProfile(ctx, req); err != nil {
		printlnFn("Profile update failed:", err.Error())
		return err
	}

	printlnFn("Profile updated")
	return nil
}
