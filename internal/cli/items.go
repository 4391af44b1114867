package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func newItemsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"item"},
		Short:   "Manage the items of a category",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <trip> <category> <name...>",
		Short: "Add an item to a category",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, c, err := app.category(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			it, err := s.AddItem(cmd.Context(), t.ID, c.ID, strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			ui.Hint(cmd.OutOrStdout(), "id: "+it.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <trip> <category> <item>",
		Short: "Flip an item between packed and unpacked",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, c, err := app.category(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			it, err := resolveItem(c, args[2])
			if err != nil {
				return err
			}
			it, err = s.ToggleItem(cmd.Context(), t.ID, c.ID, it.ID)
			if err != nil {
				return err
			}
			state := "unpacked"
			if it.Packed {
				state = "packed"
			}
			pct, _ := s.Progress(t.ID)
			ui.OKTo(cmd.OutOrStdout(), it.Name+" "+state)
			ui.Hint(cmd.OutOrStdout(), t.Name+" "+ui.ProgressBar(pct, 10))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <trip> <category> <item>",
		Aliases: []string{"delete"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, t, c, err := app.category(cmd, args[0], args[1])
			if err != nil {
				return err
			}
			it, err := resolveItem(c, args[2])
			if err != nil {
				return err
			}
			_, err = s.DeleteItem(cmd.Context(), t.ID, c.ID, it.ID)
			return err
		},
	})
	return cmd
}

// category opens the store and resolves a trip/category pair.
func (a *App) category(cmd *cobra.Command, tripRef, catRef string) (*packing.Store, model.Trip, model.Category, error) {
	s, err := a.consoleStore(cmd)
	if err != nil {
		return nil, model.Trip{}, model.Category{}, err
	}
	t, err := resolveTrip(s.Trips(), tripRef)
	if err != nil {
		return nil, model.Trip{}, model.Category{}, err
	}
	c, err := resolveCategory(t, catRef)
	if err != nil {
		return nil, model.Trip{}, model.Category{}, err
	}
	return s, t, c, nil
}
