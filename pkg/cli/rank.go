package cli

import (
	"fmt"

	"github.com/getmockd/conneg/pkg/cli/internal/output"
	"github.com/getmockd/conneg/pkg/preference"
	"github.com/spf13/cobra"
)

// EntryOutput is the JSON form of a ranked entry.
type EntryOutput struct {
	MediaRange string            `json:"mediaRange"`
	Type       string            `json:"type"`
	Subtype    string            `json:"subtype"`
	Params     map[string]string `json:"params,omitempty"`
	Quality    float64           `json:"quality"`
	Rank       float64           `json:"rank"`
	Index      int               `json:"index"`
}

func newRankCmd(g *globalFlags) *cobra.Command {
	var (
		asString  bool
		precision int
	)

	cmd := &cobra.Command{
		Use:   "rank <header>...",
		Short: "Show the ranked media ranges of an Accept header",
		Long: `Parse an Accept header and print its media ranges from most to least
preferred. Several arguments are treated as separate header lines.`,
		Example: `  conneg rank "text/*, text/html, text/html;level=1, */*"
  conneg rank --json "application/xml;q=0.9, */*;q=0.8"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := preference.FromList(args, preference.WithPrecision(precision))
			out := cmd.OutOrStdout()

			switch {
			case g.jsonOutput:
				return output.JSON(out, entriesOutput(p))
			case asString:
				fmt.Fprintln(out, p.String())
			default:
				for _, mediaRange := range p.All() {
					fmt.Fprintln(out, mediaRange)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asString, "string", false, "Print the compact Preference<...> form")
	cmd.Flags().IntVar(&precision, "precision", preference.DefaultPrecision, "Decimal digits used to rank entries")
	return cmd
}

func entriesOutput(p *preference.Preference) []EntryOutput {
	entries := p.Entries()
	out := make([]EntryOutput, len(entries))
	for i, e := range entries {
		var params map[string]string
		if len(e.Params) > 0 {
			params = make(map[string]string, len(e.Params))
			for _, param := range e.Params {
				params[param.Name] = param.Value
			}
		}
		out[i] = EntryOutput{
			MediaRange: e.MediaRange(),
			Type:       e.Type,
			Subtype:    e.Subtype,
			Params:     params,
			Quality:    e.Quality(),
			Rank:       e.Rank(),
			Index:      e.Index(),
		}
	}
	return out
}
