package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                   { return s.loggedIn }
func (s *stubExec) Register(context.Context) error     { return s.record("register") }
func (s *stubExec) Login(context.Context) error        { return s.record("login") }
func (s *stubExec) Logout(context.Context) error       { return s.record("logout") }
func (s *stubExec) Dashboard(context.Context) error    { return s.record("dashboard") }
func (s *stubExec) Accounts(context.Context) error     { return s.record("accounts") }
func (s *stubExec) Transfer(context.Context) error     { return s.record("transfer") }
func (s *stubExec) Budgets(context.Context) error      { return s.record("budgets") }
func (s *stubExec) Goals(context.Context) error        { return s.record("goals") }
func (s *stubExec) Categories(context.Context) error   { return s.record("categories") }
func (s *stubExec) Transactions(context.Context) error { return s.record("transactions") }
func (s *stubExec) AddExpense(context.Context) error   { return s.record("addexpense") }
func (s *stubExec) AddIncome(context.Context) error    { return s.record("addincome") }
func (s *stubExec) Profile(context.Context) error      { return s.record("profile") }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	t.Cleanup(func() { printlnFn = orig })

	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	return lines
}

func runInput(t *testing.T, a execIface, input string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), a, func() string { return "(test)" }, scanner)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)
	a := &stubExec{loggedIn: true}

	runInput(t, a, "dashboard\naccounts\ntransfer\nbudgets\ngoals\ncategories\ntransactions\naddexpense\naddincome\nprofile\nlogout\nexit\n")

	require.Equal(t, []string{
		"dashboard", "accounts", "transfer", "budgets", "goals", "categories",
		"transactions", "addexpense", "addincome", "profile", "logout",
	}, a.calls)
}

func TestRunREPL_ShortAliases(t *testing.T) {
	capturePrintln(t)
	a := &stubExec{loggedIn: true}

	runInput(t, a, "t\nexit\n")

	require.Equal(t, []string{"transactions"}, a.calls)
}

func TestRunREPL_HelpDependsOnAuthState(t *testing.T) {
	lines := capturePrintln(t)

	runInput(t, &stubExec{loggedIn: false}, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "register, login, exit")

	*lines = (*lines)[:0]
	runInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	require.Contains(t, strings.Join(*lines, "\n"), "dashboard")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	lines := capturePrintln(t)
	a := &stubExec{}

	runInput(t, a, "frobnicate\nexit\n")

	require.Empty(t, a.calls)
	require.Contains(t, strings.Join(*lines, "\n"), "Unknown command: frobnicate")
}

func TestRunREPL_EmptyLinesIgnored(t *testing.T) {
	capturePrintln(t)
	a := &stubExec{}

	runInput(t, a, "\n\nlogin\nexit\n")

	require.Equal(t, []string{"login"}, a.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	capturePrintln(t)
	a := &stubExec{}

	runInput(t, a, "login\n")

	require.Equal(t, []string{"login"}, a.calls)
}
