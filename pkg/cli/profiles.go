package cli

import (
	"fmt"
	"strings"

	"github.com/getmockd/conneg/pkg/cli/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newProfilesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the offer profiles of the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, cfg.Profiles)
			}

			title := cases.Title(language.English)
			for i, p := range cfg.Profiles {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "%s:\n", title.String(p.Name))
				tw := output.Table(out)
				fmt.Fprintf(tw, "  paths:\t%s\n", strings.Join(p.Paths, ", "))
				fmt.Fprintf(tw, "  offers:\t%s\n", strings.Join(p.Offers, ", "))
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
