package cli

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getmockd/conneg/pkg/cli/internal/output"
	"github.com/getmockd/conneg/pkg/config"
	"github.com/getmockd/conneg/pkg/negotiate"
	"github.com/getmockd/conneg/pkg/openapi"
	"github.com/getmockd/conneg/pkg/preference"
	"github.com/spf13/cobra"
)

// MatchOutput is the JSON form of a match result.
type MatchOutput struct {
	Accept     string   `json:"accept"`
	Offers     []string `json:"offers"`
	Selected   string   `json:"selected,omitempty"`
	Quality    float64  `json:"quality"`
	Acceptable bool     `json:"acceptable"`
}

type matchFlags struct {
	accept      string
	profile     string
	openapiFile string
	method      string
	path        string
}

func newMatchCmd(g *globalFlags) *cobra.Command {
	f := &matchFlags{}

	cmd := &cobra.Command{
		Use:   "match [offer...]",
		Short: "Pick the best offer for an Accept header",
		Long: `Select the media type a server offering the given types would respond with.

Offers are taken from the arguments, from a profile of the config file
(--profile), or from the documented responses of an OpenAPI operation
(--openapi with --path and --method). Exits non-zero when nothing is
acceptable.`,
		Example: `  conneg match --accept "text/html, application/xhtml+xml, */*" text/plain text/html
  conneg match --accept "application/*" --profile api --config conneg.yaml
  conneg match --accept "text/*" --openapi petstore.yaml --path /pets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, g, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.accept, "accept", "a", "*/*", "Accept header value")
	fs.StringVar(&f.profile, "profile", "", "Use the offers of this config profile")
	fs.StringVar(&f.openapiFile, "openapi", "", "Use the response media types of an OpenAPI document")
	fs.StringVar(&f.method, "method", http.MethodGet, "Operation method (with --openapi)")
	fs.StringVar(&f.path, "path", "", "Operation path (with --openapi)")
	cmd.MarkFlagsMutuallyExclusive("profile", "openapi")
	return cmd
}

func runMatch(cmd *cobra.Command, g *globalFlags, f *matchFlags, args []string) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}
	log := g.logger(cmd, cfg)

	offers, err := f.offers(cfg, args)
	if err != nil {
		return err
	}

	p := preference.Parse(f.accept, cfg.PreferenceOptions()...)
	result := MatchOutput{Accept: f.accept, Offers: offers}

	selected, err := negotiate.Select(p, offers)
	if err == nil {
		result.Selected = selected
		result.Quality = p.QualityOf(selected)
		result.Acceptable = true
	}
	log.Debug("match", "preference", p.String(), "offers", offers, "selected", selected)

	out := cmd.OutOrStdout()
	if g.jsonOutput {
		if err := output.JSON(out, result); err != nil {
			return err
		}
	} else if result.Acceptable {
		fmt.Fprintln(out, result.Selected)
	}

	if !result.Acceptable {
		return ErrNotAcceptable
	}
	return nil
}

// offers resolves the offer list from exactly one source.
func (f *matchFlags) offers(cfg *config.Config, args []string) ([]string, error) {
	switch {
	case f.profile != "":
		if len(args) > 0 {
			return nil, errors.New("offers given as arguments cannot be combined with --profile")
		}
		p, err := cfg.Profile(f.profile)
		if err != nil {
			return nil, err
		}
		return p.Offers, nil

	case f.openapiFile != "":
		if len(args) > 0 {
			return nil, errors.New("offers given as arguments cannot be combined with --openapi")
		}
		if f.path == "" {
			return nil, errors.New("--path is required with --openapi")
		}
		doc, err := openapi.LoadFile(f.openapiFile)
		if err != nil {
			return nil, err
		}
		offers, err := openapi.Offers(doc, f.method, f.path)
		if err != nil {
			return nil, err
		}
		if len(offers) == 0 {
			return nil, fmt.Errorf("%s %s documents no response media types", f.method, f.path)
		}
		return offers, nil

	default:
		if len(args) == 0 {
			return nil, errors.New("no offers: pass media types as arguments, --profile or --openapi")
		}
		return args, nil
	}
}
