package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func newTripsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trips",
		Aliases: []string{"trip"},
		Short:   "List and manage trips",
	}
	cmd.AddCommand(newTripsListCmd(app))
	cmd.AddCommand(newTripsAddCmd(app))
	cmd.AddCommand(newTripsEditCmd(app))
	cmd.AddCommand(newTripsRemoveCmd(app))
	cmd.AddCommand(newTripsFindCmd(app))
	return cmd
}

func newTripsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List trips with their progress",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			printTrips(cmd, s.Trips())
			return nil
		},
	}
}

func newTripsAddCmd(app *App) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "add <name...>",
		Short: "Create a trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			t, err := s.AddTrip(cmd.Context(), strings.Join(args, " "), date)
			if err != nil {
				return err
			}
			ui.Hint(cmd.OutOrStdout(), "id: "+t.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Trip date (YYYY-MM-DD)")
	return cmd
}

func newTripsEditCmd(app *App) *cobra.Command {
	var name, date string
	cmd := &cobra.Command{
		Use:   "edit <trip>",
		Short: "Rename or re-date a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("date") {
				return usagef("nothing to change; pass --name and/or --date")
			}
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			t, err := resolveTrip(s.Trips(), args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = t.Name
			}
			if !cmd.Flags().Changed("date") {
				date = t.Date
			}
			_, err = s.EditTrip(cmd.Context(), t.ID, name, date)
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New trip name")
	cmd.Flags().StringVar(&date, "date", "", "New trip date (YYYY-MM-DD)")
	return cmd
}

func newTripsRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <trip>",
		Aliases: []string{"delete"},
		Short:   "Delete a trip",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			t, err := resolveTrip(s.Trips(), args[0])
			if err != nil {
				return err
			}
			_, err = s.DeleteTrip(cmd.Context(), t.ID)
			return err
		},
	}
}

func newTripsFindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search trips by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			hits := s.FindTrips(strings.Join(args, " "))
			if len(hits) == 0 {
				ui.Hint(cmd.OutOrStdout(), "no matching trips")
				return nil
			}
			printTrips(cmd, hits)
			return nil
		},
	}
}

func printTrips(cmd *cobra.Command, trips []model.Trip) {
	out := cmd.OutOrStdout()
	if len(trips) == 0 {
		ui.Hint(out, "no trips yet")
		return
	}
	for _, t := range trips {
		date := t.Date
		if date == "" {
			date = "no date"
		}
		packed, total := t.Counts()
		fmt.Fprintf(out, "%s  %s  %s  %d/%d  %s\n",
			ui.C(ui.Current().Title, t.Name), ui.Dim(date),
			ui.ProgressBar(packing.Progress(t), 10), packed, total, ui.Dim(t.ID))
	}
}
