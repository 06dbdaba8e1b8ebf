package negotiate

import (
	"context"
	"net/http"

	"github.com/getmockd/conneg/pkg/config"
	"github.com/getmockd/conneg/pkg/httputil"
)

// Context keys.
type (
	ctxSelected  struct{}
	ctxRequestID struct{}
)

// WithSelected returns a copy of ctx carrying the negotiated media type.
func WithSelected(ctx context.Context, mediaType string) context.Context {
	return context.WithValue(ctx, ctxSelected{}, mediaType)
}

// FromContext returns the media type negotiated for the request, or "".
func FromContext(ctx context.Context) string {
	mediaType, _ := ctx.Value(ctxSelected{}).(string)
	return mediaType
}

// WithRequestID returns a copy of ctx carrying the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxRequestID{}, id)
}

// RequestIDFromContext returns the request ID stored by Middleware, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxRequestID{}).(string)
	return id
}

// Middleware negotiates every request before passing it to next. The
// selected media type is available through FromContext and the request ID
// through RequestIDFromContext; the ID is echoed in X-Request-ID. Requests
// that accept none of the offers are answered with 406.
func (n *Negotiator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.AddVary(w.Header(), HeaderAccept)

		id := requestID(r)
		w.Header().Set(HeaderRequestID, id)
		r = r.WithContext(WithRequestID(r.Context(), id))

		selected, err := n.Negotiate(r)
		if err != nil {
			httputil.WriteNotAcceptable(w, n.offers)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSelected(r.Context(), selected)))
	})
}

// ProfileMiddleware negotiates requests against the offers of the first
// profile in cfg whose path pattern matches the request path. Requests no
// profile covers are passed through untouched.
func ProfileMiddleware(cfg *config.Config, opts ...Option) func(http.Handler) http.Handler {
	negotiators := make([]*Negotiator, len(cfg.Profiles))
	for i, p := range cfg.Profiles {
		profileOpts := append([]Option{WithPreferenceOptions(cfg.PreferenceOptions()...)}, opts...)
		negotiators[i] = New(p.Offers, profileOpts...)
	}

	return func(next http.Handler) http.Handler {
		wrapped := make([]http.Handler, len(negotiators))
		for i, n := range negotiators {
			wrapped[i] = n.Middleware(next)
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for i := range cfg.Profiles {
				if cfg.Profiles[i].MatchesPath(r.URL.Path) {
					wrapped[i].ServeHTTP(w, r)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
