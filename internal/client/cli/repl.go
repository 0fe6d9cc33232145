package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Demo(ctx context.Context) error
	List(ctx context.Context) error
	New(ctx context.Context) error
	Delete(ctx context.Context) error
	Whoami(ctx context.Context) error
	Admin(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts the read–eval–print loop of the recipebox CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF or when the user types "exit" or
// "quit".
//
// The prompt shows the current status (from statusFn). Which commands are
// accepted depends on the session state:
//
//	Signed out (landing):
//	  - help            - show available commands
//	  - login           - authenticate
//	  - signup          - create an account
//	  - demo            - sign in as the demo user
//	  - admin           - print the admin console link
//	  - exit | quit     - leave the program
//
//	Signed in (dashboard):
//	  - help            - show available commands
//	  - (l)ist          - list published recipes
//	  - new             - create a recipe (interactive form)
//	  - delete          - delete one of your recipes
//	  - whoami          - show the signed-in user
//	  - admin           - print the admin console link
//	  - logout          - sign out
//	  - exit | quit     - leave the program
//
// Command handlers report their own failures to the user; errors returned to
// the loop are ignored so a failed action never takes the shell down.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "recipebox %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, new, delete, whoami, admin, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: login, signup, demo, admin, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "demo":
			_ = a.Demo(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "new":
			_ = a.New(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
