package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/packlist/internal/export"
	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/ui"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		format string
		all    bool
		render bool
	)
	cmd := &cobra.Command{
		Use:   "export [trip]",
		Short: "Export trips as Markdown or JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.consoleStore(cmd)
			if err != nil {
				return err
			}
			trips := s.Trips()
			if !all {
				ref := ""
				if len(args) == 1 {
					ref = args[0]
				}
				t, err := tripOrCurrent(trips, ref)
				if err != nil {
					return err
				}
				trips = []model.Trip{t}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				b, err := export.JSON(trips, true)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(b))
			case "md", "markdown":
				for i, t := range trips {
					if i > 0 {
						fmt.Fprintln(out)
					}
					md := export.Markdown(t)
					if render && ui.IsTTY() {
						md = export.RenderTerminal(md, 80, glamourStyle())
					}
					fmt.Fprint(out, md)
				}
			default:
				return usagef("unknown format %q (want md or json)", format)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "md", "Output format (md|json)")
	cmd.Flags().BoolVar(&all, "all", false, "Export every trip")
	cmd.Flags().BoolVar(&render, "render", false, "Render Markdown for the terminal")
	return cmd
}

func glamourStyle() string {
	if ui.Current().Name == "mono" {
		return "notty"
	}
	return "dark"
}
