package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/neatdog/neatdog/internal/client/client"
	"github.com/neatdog/neatdog/internal/client/config"
	"github.com/neatdog/neatdog/internal/client/credstore"
	"github.com/neatdog/neatdog/internal/client/services"
	"github.com/neatdog/neatdog/internal/client/session"
	"github.com/neatdog/neatdog/internal/logging"
)

var errNotLoggedIn = errors.New("please log in first")

type App struct {
	config *config.Config
	logger logging.Logger

	store      *credstore.SQLiteStore
	sessions   *session.Manager
	auth       *services.AuthService
	packs      *services.PackService
	dogs       *services.DogService
	activities *services.ActivityService

	// pack is the selected pack; zero means none.
	pack     int64
	packName string

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the credential store and wires the transport, session and
// services. Close releases the store.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	store, err := credstore.Open(ctx, c.StorePath, c.StoreSecret)
	if err != nil {
		return nil, err
	}

	api, err := client.New(c.ServerURL,
		client.WithDoer(&http.Client{Timeout: c.RequestTimeout}),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	mgr := session.New(api, store, logger)

	return &App{
		config:     c,
		logger:     logger,
		store:      store,
		sessions:   mgr,
		auth:       services.NewAuthService(mgr),
		packs:      services.NewPackService(mgr.API(), mgr),
		dogs:       services.NewDogService(mgr.API(), mgr),
		activities: services.NewActivityService(mgr.API(), mgr),
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}, nil
}

// Run restores a stored session, if any, and runs the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to neatdog (type 'help' for commands)")

	if err := a.auth.Restore(ctx); err != nil {
		fmt.Fprintln(a.out, "Stored session could not be restored:", err)
	}
	if cur, ok := a.auth.Current(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", cur.User.Name)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.Current()
	return ok
}

func (a *App) getStatus() string {
	cur, ok := a.auth.Current()
	if !ok {
		return ""
	}
	s := cur.User.Email
	if a.pack != 0 {
		s += " · " + a.packName
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	return nil
}

// requirePack returns the selected pack, failing when none is selected or
// the session has ended.
func (a *App) requirePack() (int64, error) {
	if err := a.requireLogin(); err != nil {
		return 0, err
	}
	if a.pack == 0 {
		return 0, errors.New("no pack selected, use 'pack <id>' first")
	}
	return a.pack, nil
}

func (a *App) prompt(text string) (string, error) {
	return GetSimpleText(a.reader, text, a.out)
}
