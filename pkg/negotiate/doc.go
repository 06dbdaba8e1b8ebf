// Package negotiate applies content negotiation to HTTP requests.
//
// A Negotiator knows the media types a handler can produce, in the server's
// fallback order, and picks one for each request from its Accept header:
//
//	n := negotiate.New([]string{"application/json", "application/xml", "text/plain"},
//		negotiate.WithLogger(logger))
//
//	mux.Handle("/users", n.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		_ = n.Render(w, r, http.StatusOK, users)
//	})))
//
// Requests without an Accept header accept anything. Requests that accept none
// of the offers, or only with q=0, get a 406 response listing the offers.
// Every response gets "Vary: Accept".
//
// ProfileMiddleware does the same for a whole server, picking the offer list
// by URL path from a config.Config.
package negotiate
