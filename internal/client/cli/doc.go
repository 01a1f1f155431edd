// Package cli provides the interactive FinWallet command-line client.
//
// It wires configuration, local credential storage, the API client, resource
// services, and the session manager into an interactive REPL. Typical flow:
// restore the previous session from local storage, then execute user
// commands until exit.
//
// Key features:
//   - Register / Login / Logout against the ManageMyMoney API
//   - Dashboard summary (balances, top categories, recent activity)
//   - List accounts, budgets, savings goals, categories, transactions
//   - Record expenses and income, transfer between accounts
//   - View and update the user profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
