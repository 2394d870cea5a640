package cli

import (
	"context"
	"fmt"

	"github.com/neatdog/neatdog/internal/client/services"
)

// Dog shows the selected pack's dog.
func (a *App) Dog(ctx context.Context, _ []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	dog, ok, err := a.dogs.Get(ctx, packID)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "This pack has no dog yet. Add one with 'setdog'.")
		return nil
	}

	fmt.Fprintf(a.out, "%s\n", dog.Name)
	if dog.Breed != nil && *dog.Breed != "" {
		fmt.Fprintf(a.out, "  Breed: %s\n", *dog.Breed)
	}
	if dog.BirthDate != nil {
		fmt.Fprintf(a.out, "  Born:  %s\n", formatDay(dog.BirthDate.Time))
	}
	if dog.PhotoURL != nil {
		fmt.Fprintf(a.out, "  Photo: %s\n", *dog.PhotoURL)
	}
	return nil
}

// SetDog creates the pack's dog, or edits it when one exists.
func (a *App) SetDog(ctx context.Context, _ []string) error {
	packID, err := a.requirePack()
	if err != nil {
		return err
	}

	current, exists, err := a.dogs.Get(ctx, packID)
	if err != nil {
		return err
	}

	var in services.DogInput
	if in.Name, err = a.prompt(withDefault("Dog name", current.Name)); err != nil {
		return err
	}
	if in.Name == "" {
		in.Name = current.Name
	}

	breedDefault := ""
	if current.Breed != nil {
		breedDefault = *current.Breed
	}
	if in.Breed, err = a.prompt(withDefault("Breed (optional)", breedDefault)); err != nil {
		return err
	}
	if in.Breed == "" {
		in.Breed = breedDefault
	}

	born, err := a.prompt("Birth date YYYY-MM-DD (optional)")
	if err != nil {
		return err
	}
	if born != "" {
		if in.BirthDate, err = parseDay(born); err != nil {
			return err
		}
	}

	if exists {
		dog, err := a.dogs.Update(ctx, packID, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Updated %s\n", dog.Name)
		return nil
	}

	dog, err := a.dogs.Create(ctx, packID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s to the pack\n", dog.Name)
	return nil
}

func withDefault(prompt, def string) string {
	if def == "" {
		return prompt
	}
	return fmt.Sprintf("%s [%s]", prompt, def)
}
