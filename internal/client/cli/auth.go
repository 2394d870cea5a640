package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/neatdog/neatdog/internal/jwtx"
)

// getPassword is an indirection used to facilitate testing.
var getPassword = GetPassword

// Signup prompts for email, name and password and creates an account.
func (a *App) Signup(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	name, err := a.prompt("Enter your name")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, email, password, name)
	if err != nil {
		return err
	}

	a.clearPack()
	fmt.Fprintf(a.out, "Welcome, %s!\n", user.Name)
	return nil
}

// Login prompts for credentials and signs in.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := a.prompt("Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.clearPack()
	fmt.Fprintf(a.out, "Signed in as %s\n", user.Name)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	a.auth.Logout(ctx)
	a.clearPack()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Status prints who is signed in and for how long the access token lasts.
func (a *App) Status(_ context.Context, _ []string) error {
	cur, ok := a.auth.Current()
	if !ok {
		fmt.Fprintln(a.out, "Not signed in")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s <%s>\n", cur.User.Name, cur.User.Email)
	if d, ok := jwtx.Remaining(cur.Token.AccessToken, time.Now()); ok {
		if d == 0 {
			fmt.Fprintln(a.out, "Access token expired; log in again to continue")
		} else {
			fmt.Fprintf(a.out, "Access token valid for %s\n", d)
		}
	}
	if a.pack != 0 {
		fmt.Fprintf(a.out, "Selected pack: #%d %s\n", a.pack, a.packName)
	}
	fmt.Fprintf(a.out, "Server: %s\n", a.sessions.API().BaseURL())
	return nil
}

func (a *App) clearPack() {
	a.pack = 0
	a.packName = ""
}
