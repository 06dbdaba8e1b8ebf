package cli

import (
	"fmt"
	"strconv"

	"github.com/getmockd/conneg/pkg/cli/internal/output"
	"github.com/getmockd/conneg/pkg/preference"
	"github.com/spf13/cobra"
)

// QualityOutput is the JSON form of one quality lookup.
type QualityOutput struct {
	MediaType string  `json:"mediaType"`
	Quality   float64 `json:"quality"`
}

func newQualityCmd(g *globalFlags) *cobra.Command {
	var (
		accept    string
		precision int
	)

	cmd := &cobra.Command{
		Use:   "quality <media-type>...",
		Short: "Show the quality an Accept header assigns to media types",
		Long: `Print the quality of each media type under the given Accept header.
Wildcard matches are reduced by a small epsilon derived from --precision,
so "text/*" rates text/plain 0.9999 at the default precision.`,
		Example: `  conneg quality --accept "text/html;q=0.8, */*;q=0.1" text/html image/png
  conneg quality --accept "text/*" --precision 6 text/plain`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := preference.Parse(accept, preference.WithPrecision(precision))

			results := make([]QualityOutput, len(args))
			for i, mediaType := range args {
				results[i] = QualityOutput{MediaType: mediaType, Quality: p.QualityOf(mediaType)}
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return output.JSON(out, results)
			}
			for _, r := range results {
				fmt.Fprintf(out, "%s\t%s\n", r.MediaType, strconv.FormatFloat(r.Quality, 'f', -1, 64))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&accept, "accept", "a", "*/*", "Accept header value")
	cmd.Flags().IntVar(&precision, "precision", preference.DefaultPrecision, "Decimal digits of the result")
	return cmd
}
