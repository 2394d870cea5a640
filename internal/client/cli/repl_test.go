package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
	err   error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Signup(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("signup", args)
}
func (f *fakeExec) Login(_ context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(_ context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) Status(_ context.Context, args []string) error  { return f.record("status", args) }
func (f *fakeExec) Packs(_ context.Context, args []string) error   { return f.record("packs", args) }
func (f *fakeExec) Pack(_ context.Context, args []string) error    { return f.record("pack", args) }
func (f *fakeExec) NewPack(_ context.Context, args []string) error { return f.record("newpack", args) }
func (f *fakeExec) Invite(_ context.Context, args []string) error  { return f.record("invite", args) }
func (f *fakeExec) Accept(_ context.Context, args []string) error  { return f.record("accept", args) }
func (f *fakeExec) Dog(_ context.Context, args []string) error     { return f.record("dog", args) }
func (f *fakeExec) SetDog(_ context.Context, args []string) error  { return f.record("setdog", args) }
func (f *fakeExec) Types(_ context.Context, args []string) error   { return f.record("types", args) }
func (f *fakeExec) NewType(_ context.Context, args []string) error { return f.record("newtype", args) }
func (f *fakeExec) Log(_ context.Context, args []string) error     { return f.record("log", args) }
func (f *fakeExec) QuickLog(_ context.Context, args []string) error {
	return f.record("quicklog", args)
}
func (f *fakeExec) History(_ context.Context, args []string) error { return f.record("history", args) }

// capturePrintln replaces printlnFn for the test and returns the printed lines.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"login",
		"packs",
		"pack 3",
		"newpack Morning walkers",
		"dog",
		"setdog",
		"types",
		"newtype",
		"log",
		"quicklog walk",
		"history type=walk from=2026-01-01",
		"invite x@y.z",
		"accept abc",
		"status",
		"logout",
		"signup",
		"exit",
		"packs",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	assert.Equal(t, []string{
		"login", "packs", "pack", "newpack", "dog", "setdog", "types", "newtype", "log",
		"quicklog", "history", "invite", "accept", "status", "logout", "signup",
	}, exec.calls)
	assert.Equal(t, []string{"3"}, exec.args["pack"])
	assert.Equal(t, []string{"Morning", "walkers"}, exec.args["newpack"])
	assert.Equal(t, []string{"type=walk", "from=2026-01-01"}, exec.args["history"])
}

func TestRunREPL_HelpDependsOnLogin(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" },
		bufio.NewReader(strings.NewReader("help\nlogin\nhelp\nquit\n")))

	assert.Contains(t, *lines, helpLoggedOut)
	assert.Contains(t, *lines, helpLoggedIn)
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_ErrorsAndUnknownCommandsKeepLooping(t *testing.T) {
	lines := capturePrintln(t)

	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "(a@b.com)" },
		bufio.NewReader(strings.NewReader("\nfoobar\nstatus\nstatus")))

	assert.Equal(t, []string{"status", "status"}, exec.calls, "last line without newline still runs")
	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "Error: boom")
	assert.Contains(t, *lines, "neatdog (a@b.com)> ")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrintln(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status\nstatus\n")))

	assert.Equal(t, []string{"status"}, exec.calls)
}
