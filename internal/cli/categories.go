package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/ui"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cats"},
		Short:   "Manage the categories of a trip",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <trip> <name...>",
		Short: "Add a category to a trip",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			t, err := resolveTrip(s.Trips(), args[0])
			if err != nil {
				return err
			}
			c, err := s.AddCategory(cmd.Context(), t.ID, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			ui.Hint(cmd.OutOrStdout(), "id: "+c.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <trip> <category>",
		Aliases: []string{"delete"},
		Short:   "Delete a category and its items",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			t, err := resolveTrip(s.Trips(), args[0])
			if err != nil {
				return err
			}
			c, err := resolveCategory(t, args[1])
			if err != nil {
				return err
			}
			_, err = s.DeleteCategory(cmd.Context(), t.ID, c.ID)
			return err
		},
	})
	return cmd
}
