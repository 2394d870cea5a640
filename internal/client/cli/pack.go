package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Packs lists the user's packs.
func (a *App) Packs(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	packs, err := a.packs.List(ctx)
	if err != nil {
		return err
	}
	if len(packs) == 0 {
		fmt.Fprintln(a.out, "No packs yet. Create one with 'newpack' or join with 'accept'.")
		return nil
	}
	for _, p := range packs {
		marker := " "
		if p.ID == a.pack {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s #%d  %s  (since %s)\n", marker, p.ID, p.Name, formatDay(p.CreatedAt.Time))
	}
	return nil
}

// Pack selects pack <id> and shows its members.
func (a *App) Pack(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: pack <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	p, err := a.packs.Get(ctx, id)
	if err != nil {
		return err
	}

	a.pack, a.packName = p.ID, p.Name
	fmt.Fprintf(a.out, "Pack #%d %s\n", p.ID, p.Name)
	fmt.Fprintf(a.out, "%d member%s:\n", len(p.Members), plural(len(p.Members), "", "s"))
	for _, m := range p.Members {
		fmt.Fprintf(a.out, "  %s <%s>  %s, joined %s\n", m.User.Name, m.User.Email, m.Role, formatDay(m.JoinedAt.Time))
	}
	return nil
}

// NewPack creates a pack named by the arguments, or prompts for a name.
func (a *App) NewPack(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if name == "" {
		var err error
		if name, err = a.prompt("Pack name"); err != nil {
			return err
		}
	}

	p, err := a.packs.Create(ctx, name)
	if err != nil {
		return err
	}

	a.pack, a.packName = p.ID, p.Name
	fmt.Fprintf(a.out, "Created pack #%d %s\n", p.ID, p.Name)
	return nil
}

// Invite invites an email address to the selected pack.
func (a *App) Invite(ctx context.Context, args []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	email := firstArg(args)
	if email == "" {
		if email, err = a.prompt("Email to invite"); err != nil {
			return err
		}
	}

	inv, err := a.packs.Invite(ctx, packID, email)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Invitation sent to %s (expires %s)\n", inv.Email, formatDay(inv.ExpiresAt.Time))
	return nil
}

// Accept joins a pack with an invitation token.
func (a *App) Accept(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	token := firstArg(args)
	if token == "" {
		var err error
		if token, err = a.prompt("Invitation token"); err != nil {
			return err
		}
	}

	p, err := a.packs.AcceptInvitation(ctx, token)
	if err != nil {
		return err
	}

	a.pack, a.packName = p.ID, p.Name
	fmt.Fprintf(a.out, "Joined pack #%d %s\n", p.ID, p.Name)
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
