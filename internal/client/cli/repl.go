package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Accounts(ctx context.Context) error
	Transfer(ctx context.Context) error
	Budgets(ctx context.Context) error
	Goals(ctx context.Context) error
	Categories(ctx context.Context) error
	Transactions(ctx context.Context) error
	AddExpense(ctx context.Context) error
	AddIncome(ctx context.Context) error
	Profile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FinWallet CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - dashboard      — financial summary and recent activity
//	  - accounts       — list accounts and balances
//	  - transfer       — move money between accounts
//	  - budgets        — list budgets and their progress
//	  - goals          — list savings goals
//	  - categories     — list categories
//	  - transactions   — list transactions
//	  - addexpense     — record an expense
//	  - addincome      — record income
//	  - profile | settings — view or update the user profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fw> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, accounts, transfer, budgets, goals, categories, (t)ransactions, addexpense, addincome, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "accounts":
			_ = a.Accounts(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "budgets":
			_ = a.Budgets(ctx)

		case "goals":
			_ = a.Goals(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "t", "transactions":
			_ = a.Transactions(ctx)

		case "addexpense":
			_ = a.AddExpense(ctx)

		case "addincome":
			_ = a.AddIncome(ctx)

		case "profile", "settings":
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
