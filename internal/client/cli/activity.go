package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/neatdog/neatdog/internal/client/models"
	"github.com/neatdog/neatdog/internal/client/services"
)

// Types lists the activity types available in the selected pack.
func (a *App) Types(ctx context.Context, _ []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	types, err := a.activities.ListTypes(ctx, packID)
	if err != nil {
		return err
	}
	for _, t := range types {
		kind := "custom"
		if t.IsDefault {
			kind = "default"
		}
		fmt.Fprintf(a.out, "  #%d  %-12s %s  %s  (%s)\n", t.ID, t.Name, t.Icon, t.Color, kind)
	}
	return nil
}

// NewType adds a custom activity type to the selected pack.
func (a *App) NewType(ctx context.Context, args []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if name == "" {
		if name, err = a.prompt("Activity name"); err != nil {
			return err
		}
	}
	icon, err := a.prompt(withDefault("Icon", services.DefaultTypeIcon))
	if err != nil {
		return err
	}
	color, err := a.prompt(withDefault("Color", services.DefaultTypeColor))
	if err != nil {
		return err
	}

	t, err := a.activities.CreateType(ctx, packID, name, icon, color)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created activity type #%d %s\n", t.ID, t.Name)
	return nil
}

// Log records an activity with optional notes and time.
func (a *App) Log(ctx context.Context, args []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	ref := strings.Join(args, " ")
	if ref == "" {
		if ref, err = a.prompt("Activity type (name or id)"); err != nil {
			return err
		}
	}
	t, err := a.resolveType(ctx, packID, ref)
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Notes (optional)", a.out)
	if err != nil {
		return err
	}
	when, err := a.prompt("When? YYYY-MM-DD HH:MM (empty for now)")
	if err != nil {
		return err
	}
	var at time.Time
	if when != "" {
		if at, err = parseWhen(when); err != nil {
			return err
		}
	}

	entry, err := a.activities.Log(ctx, packID, t.ID, notes, at)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged %s at %s\n", t.Name, formatMoment(entry.LoggedAt.Time))
	return nil
}

// QuickLog records an activity of the given type now, without notes.
func (a *App) QuickLog(ctx context.Context, args []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return errors.New("usage: quicklog <type name or id>")
	}

	t, err := a.resolveType(ctx, packID, strings.Join(args, " "))
	if err != nil {
		return err
	}

	entry, err := a.activities.QuickLog(ctx, packID, t.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged %s at %s\n", t.Name, formatMoment(entry.LoggedAt.Time))
	return nil
}

// History lists activities of the selected pack. Arguments are optional
// filters: type=<name or id>, from=YYYY-MM-DD, to=YYYY-MM-DD.
func (a *App) History(ctx context.Context, args []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	var f services.Filter
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || val == "" {
			return fmt.Errorf("unknown filter %q, use type=, from= or to=", arg)
		}
		switch key {
		case "type":
			t, err := a.resolveType(ctx, packID, val)
			if err != nil {
				return err
			}
			f.TypeID = t.ID
		case "from":
			if f.Start, err = parseDay(val); err != nil {
				return err
			}
		case "to":
			day, err := parseDay(val)
			if err != nil {
				return err
			}
			f.End = day.AddDate(0, 0, 1).Add(-time.Second)
		default:
			return fmt.Errorf("unknown filter %q, use type=, from= or to=", key)
		}
	}

	logs, err := a.activities.List(ctx, packID, f)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintln(a.out, "No activities found")
		return nil
	}

	fmt.Fprintf(a.out, "%d activit%s\n", len(logs), plural(len(logs), "y", "ies"))
	for _, l := range logs {
		line := fmt.Sprintf("  %s  %-12s by %s", formatMoment(l.LoggedAt.Time), l.ActivityType.Name, l.User.Name)
		if l.Notes != nil && *l.Notes != "" {
			line += "  " + strings.ReplaceAll(*l.Notes, "\n", " / ")
		}
		fmt.Fprintln(a.out, line)
	}
	return nil
}

// resolveType finds an activity type by id or case-insensitive name.
func (a *App) resolveType(ctx context.Context, packID int64, ref string) (models.ActivityType, error) {
	types, err := a.activities.ListTypes(ctx, packID)
	if err != nil {
		return models.ActivityType{}, err
	}

	ref = strings.TrimSpace(ref)
	id, idErr := strconv.ParseInt(strings.TrimPrefix(ref, "#"), 10, 64)
	for _, t := range types {
		if (idErr == nil && t.ID == id) || strings.EqualFold(t.Name, ref) {
			return t, nil
		}
	}
	return models.ActivityType{}, fmt.Errorf("no activity type %q in this pack, see 'types'", ref)
}
