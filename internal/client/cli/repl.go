package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

type command func(ctx context.Context, args []string) error

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Status(ctx context.Context, args []string) error

	Packs(ctx context.Context, args []string) error
	Pack(ctx context.Context, args []string) error
	NewPack(ctx context.Context, args []string) error
	Invite(ctx context.Context, args []string) error
	Accept(ctx context.Context, args []string) error

	Dog(ctx context.Context, args []string) error
	SetDog(ctx context.Context, args []string) error

	Types(ctx context.Context, args []string) error
	NewType(ctx context.Context, args []string) error
	Log(ctx context.Context, args []string) error
	QuickLog(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: signup, login, status, exit"
	helpLoggedIn  = "Available commands: packs, pack <id>, newpack, invite, accept, dog, setdog, " +
		"types, newtype, log, quicklog <type>, history [type=..] [from=..] [to=..], status, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The prompt shows statusFn. The loop ends on EOF or "exit"/"quit".
// Command errors are printed and never end the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	commands := map[string]command{
		"signup":   a.Signup,
		"login":    a.Login,
		"logout":   a.Logout,
		"status":   a.Status,
		"packs":    a.Packs,
		"pack":     a.Pack,
		"newpack":  a.NewPack,
		"invite":   a.Invite,
		"accept":   a.Accept,
		"dog":      a.Dog,
		"setdog":   a.SetDog,
		"types":    a.Types,
		"newtype":  a.NewType,
		"log":      a.Log,
		"quicklog": a.QuickLog,
		"history":  a.History,
	}

	for {
		printlnFn(fmt.Sprintf("neatdog %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
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
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		run, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err := run(ctx, args); err != nil {
			printlnFn("Error:", err)
		}

		if ctx.Err() != nil {
			return
		}
	}
}
