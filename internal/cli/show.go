package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/packing"
	"github.com/idilsaglam/packlist/internal/ui"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [trip]",
		Short: "Show a trip's packing list (defaults to the first trip)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			ref := ""
			if len(args) == 1 {
				ref = args[0]
			}
			t, err := tripOrCurrent(s.Trips(), ref)
			if err != nil {
				return err
			}
			ui.Panel(cmd.OutOrStdout(), tripLines(t))
			return nil
		},
	}
}

func tripLines(t model.Trip) []string {
	th := ui.Current()
	packed, total := t.Counts()
	date := t.Date
	if date == "" {
		date = "no date"
	}
	lines := []string{
		ui.C(th.Title, t.Name) + "  " + ui.Dim(date),
		fmt.Sprintf("%s  %d/%d packed", ui.ProgressBar(packing.Progress(t), 20), packed, total),
	}
	if len(t.Categories) == 0 {
		return append(lines, "", ui.Dim("No categories yet"))
	}
	for _, c := range t.Categories {
		lines = append(lines, "", ui.C(th.Accent, c.Name))
		if len(c.Items) == 0 {
			lines = append(lines, "  "+ui.Dim("No items yet"))
		}
		for _, it := range c.Items {
			box := th.BoxUnchecked
			if it.Packed {
				box = ui.C(th.Success, th.BoxChecked)
			}
			lines = append(lines, "  "+box+" "+ui.Truncate(it.Name, 48))
		}
	}
	return lines
}
