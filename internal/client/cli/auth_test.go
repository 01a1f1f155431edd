package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dvalero/finwallet/internal/client/models"
	"github.com/dvalero/finwallet/internal/client/session"
)

// fakeSession is a scripted sessionManager for command tests.
type fakeSession struct {
	state       session.State
	loginErr    error
	registerErr error
	updateErr   error

	lastLogin    models.LoginRequest
	lastRegister models.RegisterRequest
	logoutCalls  int

	sub func(session.State)
}

func (f *fakeSession) Start(ctx context.Context) {}
func (f *fakeSession) Close()                    {}
func (f *fakeSession) State() session.State      { return f.state }

func (f *fakeSession) Subscribe(fn func(session.State)) func() {
	f.sub = fn
	return func() { f.sub = nil }
}

func (f *fakeSession) notify() {
	if f.sub != nil {
		f.sub(f.state)
	}
}

func (f *fakeSession) Login(ctx context.Context, req models.LoginRequest) error {
	f.lastLogin = req
	if f.loginErr != nil {
		return f.loginErr
	}
	f.state = session.State{User: &models.User{Email: req.Email, FirstName: "Test"}}
	return nil
}

func (f *fakeSession) Register(ctx context.Context, req models.RegisterRequest) error {
	f.lastRegister = req
	if f.registerErr != nil {
		return f.registerErr
	}
	f.state = session.State{User: &models.User{Email: req.Email, FirstName: req.FirstName}}
	return nil
}

func (f *fakeSession) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.state.User.FirstName = req.FirstName
	f.state.User.Currency = req.Currency
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) {
	f.logoutCalls++
	f.state = session.State{}
	f.notify()
}

// stubInputs replaces the interactive input seams with scripted answers.
func stubInputs(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		v := texts[i]
		i++
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) (string, error) {
		return password, nil
	}
}

func newCommandApp(fs *fakeSession) *App {
	return &App{session: fs, reader: bufio.NewReader(strings.NewReader(""))}
}

func TestLoginCommand_Success(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"a@b.com"}, "secret")

	fs := &fakeSession{}
	a := newCommandApp(fs)

	require.NoError(t, a.Login(context.Background()))
	require.Equal(t, models.LoginRequest{Email: "a@b.com", Password: "secret"}, fs.lastLogin)
	require.Contains(t, strings.Join(*lines, "\n"), "Welcome back")
}

func TestLoginCommand_Failure(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"a@b.com"}, "wrong")

	fs := &fakeSession{loginErr: &models.ValidationError{Field: "password", Reason: "required"}}
	a := newCommandApp(fs)

	require.Error(t, a.Login(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Login failed")
}

func TestRegisterCommand_Success(t *testing.T) {
	capturePrintln(t)
	stubInputs(t, []string{"a@b.com", "Ann", "Lee", "USD"}, "secret")

	fs := &fakeSession{}
	a := newCommandApp(fs)

	require.NoError(t, a.Register(context.Background()))
	require.Equal(t, "a@b.com", fs.lastRegister.Email)
	require.Equal(t, "secret", fs.lastRegister.Password)
	require.Equal(t, "secret", fs.lastRegister.ConfirmPassword)
	require.Equal(t, "Ann", fs.lastRegister.FirstName)
	require.Equal(t, "USD", fs.lastRegister.Currency)
}

func TestLogoutCommand(t *testing.T) {
	capturePrintln(t)

	fs := &fakeSession{state: session.State{User: &models.User{Email: "a@b.com"}}}
	a := newCommandApp(fs)

	require.NoError(t, a.Logout(context.Background()))
	require.Equal(t, 1, fs.logoutCalls)
	require.False(t, fs.state.Authenticated())
}

func TestProfileCommand_NotLoggedIn(t *testing.T) {
	lines := capturePrintln(t)

	a := newCommandApp(&fakeSession{})

	require.NoError(t, a.Profile(context.Background()))
	require.Contains(t, strings.Join(*lines, "\n"), "Not logged in")
}

func TestProfileCommand_Update(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"y", "Ann", "Lee", "EUR"}, "")

	fs := &fakeSession{state: session.State{User: &models.User{Email: "a@b.com", FirstName: "A", Currency: "USD"}}}
	a := newCommandApp(fs)

	require.NoError(t, a.Profile(context.Background()))
	require.Equal(t, "Ann", fs.state.User.FirstName)
	require.Equal(t, "EUR", fs.state.User.Currency)
	require.Contains(t, strings.Join(*lines, "\n"), "Profile updated")
}

func TestProfileCommand_ViewOnly(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"n"}, "")

	fs := &fakeSession{state: session.State{User: &models.User{Email: "a@b.com", FirstName: "A", Currency: "USD"}}}
	a := newCommandApp(fs)

	require.NoError(t, a.Profile(context.Background()))
	require.Equal(t, "A", fs.state.User.FirstName)
	require.Contains(t, strings.Join(*lines, "\n"), "a@b.com")
}

func TestWatchSession_ExpiryNotice(t *testing.T) {
	lines := capturePrintln(t)

	fs := &fakeSession{state: session.State{User: &models.User{Email: "a@b.com"}}}
	a := newCommandApp(fs)

	cancel := a.watchSession()
	defer cancel()

	// A 401 tears the session down without going through the logout command.
	fs.Logout(context.Background())

	require.Contains(t, strings.Join(*lines, "\n"), "Session expired")
}

func TestWatchSession_SilentOnExplicitLogout(t *testing.T) {
	lines := capturePrintln(t)

	fs := &fakeSession{state: session.State{User: &models.User{Email: "a@b.com"}}}
	a := newCommandApp(fs)

	cancel := a.watchSession()
	defer cancel()

	require.NoError(t, a.Logout(context.Background()))

	out := strings.Join(*lines, "\n")
	require.Contains(t, out, "Logged out")
	require.NotContains(t, out, "Session expired")
}

func TestGetStatus(t *testing.T) {
	a := newCommandApp(&fakeSession{})
	require.Equal(t, "(anonymous)", a.getStatus())

	a = newCommandApp(&fakeSession{state: session.State{User: &models.User{Email: "a@b.com"}}})
	require.Equal(t, "(a@b.com)", a.getStatus())
}
