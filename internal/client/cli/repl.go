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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Calc(ctx context.Context, args []string) error
	Prog(ctx context.Context, args []string) error
	Modes(ctx context.Context, args []string) error
	Users(ctx context.Context) error
}

// runREPL starts the read–eval–print loop of the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate with email and password
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - whoami                       — show the resolved identity
//	  - calc <xp>                    — preview the level breakdown for an XP value
//	  - prog <userId>                — load a user's progression
//	  - prog show                    — show the loaded record
//	  - prog edit <field> <value>    — edit xp, level, elo or tier locally
//	  - prog save                    — persist the edits
//	  - modes                        — list game mode configurations
//	  - modes set <mode> <f> <v>     — edit one mode locally
//	  - modes update <mode>          — push one mode's edits
//	  - modes saveall                — push all configurations at once
//	  - modes reset                  — restore platform defaults
//	  - users                        — list platform users
//	  - logout                       — log out
//	  - exit | quit                  — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qadm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, calc, prog, modes, users, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "calc":
			_ = a.Calc(ctx, args)

		case "prog":
			_ = a.Prog(ctx, args)

		case "modes":
			_ = a.Modes(ctx, args)

		case "users":
			_ = a.Users(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
