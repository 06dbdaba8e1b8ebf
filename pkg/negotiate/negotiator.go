package negotiate

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/getmockd/conneg/pkg/logging"
	"github.com/getmockd/conneg/pkg/preference"
	"github.com/google/uuid"
)

// Header names.
const (
	HeaderAccept      = "Accept"
	HeaderVary        = "Vary"
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
)

// ErrNotAcceptable is returned when the client accepts none of the offers.
var ErrNotAcceptable = errors.New("not acceptable")

// Negotiator selects one of a fixed list of media types per request.
// It is safe for concurrent use.
type Negotiator struct {
	offers   []string
	logger   *slog.Logger
	prefOpts []preference.Option
	encoders Encoders
}

// Option configures a Negotiator.
type Option func(*Negotiator)

// WithLogger sets the logger. Selections are logged at debug level and
// rejections at info level.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Negotiator) {
		n.logger = logging.OrNop(logger)
	}
}

// WithPrecision sets the precision of the Preference built per request.
func WithPrecision(precision int) Option {
	return func(n *Negotiator) {
		n.prefOpts = append(n.prefOpts, preference.WithPrecision(precision))
	}
}

// WithPreferenceOptions appends options for the Preference built per request.
func WithPreferenceOptions(opts ...preference.Option) Option {
	return func(n *Negotiator) {
		n.prefOpts = append(n.prefOpts, opts...)
	}
}

// WithEncoders replaces the encoders used by Render.
func WithEncoders(encoders Encoders) Option {
	return func(n *Negotiator) {
		n.encoders = encoders
	}
}

// New creates a Negotiator for the given offers, most preferred first.
func New(offers []string, opts ...Option) *Negotiator {
	n := &Negotiator{
		offers:   append([]string(nil), offers...),
		logger:   logging.Nop(),
		encoders: DefaultEncoders(),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Offers returns a copy of the offered media types.
func (n *Negotiator) Offers() []string {
	return append([]string(nil), n.offers...)
}

// Preference parses the Accept header of r. Multiple Accept lines are joined;
// a missing or blank header accepts anything.
func (n *Negotiator) Preference(r *http.Request) *preference.Preference {
	return preference.Parse(acceptHeader(r), n.prefOpts...)
}

// Negotiate returns the offer to respond with, or ErrNotAcceptable.
func (n *Negotiator) Negotiate(r *http.Request) (string, error) {
	accept := acceptHeader(r)
	p := preference.Parse(accept, n.prefOpts...)

	selected, err := Select(p, n.offers)
	if err != nil {
		if n.logger.Enabled(r.Context(), slog.LevelInfo) {
			n.logger.Info("no acceptable representation",
				"request_id", requestID(r),
				"accept", accept,
				"offered", n.offers,
			)
		}
		return "", err
	}

	if n.logger.Enabled(r.Context(), slog.LevelDebug) {
		n.logger.Debug("negotiated representation",
			"request_id", requestID(r),
			"accept", accept,
			"preference", p.String(),
			"selected", selected,
		)
	}
	return selected, nil
}

// Select returns the offer p matches first. Offers whose most specific
// matching media range carries q=0 are refused, so "*/*, text/html;q=0" never
// selects text/html. A selection rated 0 yields ErrNotAcceptable.
func Select(p *preference.Preference, offers []string) (string, error) {
	entries := p.Entries()
	acceptable := make([]string, 0, len(offers))
	for _, offer := range offers {
		if !refused(entries, offer) {
			acceptable = append(acceptable, offer)
		}
	}

	selected, ok := p.Match(acceptable)
	if !ok || p.QualityOf(selected) == 0 {
		return "", ErrNotAcceptable
	}
	return selected, nil
}

// refused reports whether the most specific entry matching offer has an
// explicit quality of 0. Among equally specific entries the higher ranked
// one decides.
func refused(entries []preference.Entry, offer string) bool {
	best, bestWildcards := -1, 3
	for i, e := range entries {
		if !e.Matches(offer) {
			continue
		}
		if w := wildcards(e); w < bestWildcards {
			best, bestWildcards = i, w
		}
	}
	if best < 0 {
		return false
	}
	q, explicit := entries[best].ExplicitQuality()
	return explicit && q == 0
}

func wildcards(e preference.Entry) int {
	switch {
	case e.Type == "*":
		return 2
	case e.Subtype == "*":
		return 1
	default:
		return 0
	}
}

func acceptHeader(r *http.Request) string {
	accept := strings.Join(r.Header.Values(HeaderAccept), ",")
	if strings.TrimSpace(accept) == "" {
		return "*/*"
	}
	return accept
}

// requestID returns the ID stored by Middleware, the client supplied
// X-Request-ID, or a fresh UUID.
func requestID(r *http.Request) string {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	if id := r.Header.Get(HeaderRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
