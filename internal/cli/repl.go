package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cubihealth/internal/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context, role models.Role) error
	Login(ctx context.Context, role models.Role) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Risk(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the CubiHealth CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cubi %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, risk, logout, exit")
			} else {
				printlnFn("Available commands: signup patient|doctor, login patient|doctor, exit")
			}

		case "signup", "login":
			role, ok := roleArg(args)
			if !ok {
				printlnFn(fmt.Sprintf("Usage: %s patient|doctor", cmd))
				continue
			}
			if cmd == "signup" {
				err = a.Signup(ctx, role)
			} else {
				err = a.Login(ctx, role)
			}

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "risk":
			err = a.Risk(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}

func roleArg(args []string) (models.Role, bool) {
	if len(args) != 1 {
		return "", false
	}
	role, err := models.ParseRole(strings.ToLower(args[0]))
	if err != nil {
		return "", false
	}
	return role, true
}
