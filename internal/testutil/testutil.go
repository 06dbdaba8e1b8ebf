// Package testutil builds requests for negotiation tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
)

var lastID atomic.Uint64

// NextID returns a process-wide, strictly increasing identifier.
func NextID() uint64 {
	return lastID.Add(1)
}

// NewRequest returns a GET request for path carrying the given Accept header
// and a unique X-Request-ID. An empty accept leaves the header unset.
func NewRequest(path, accept string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if accept != "" {
		r.Header.Set("Accept", accept)
	}
	r.Header.Set("X-Request-ID", "req-"+strconv.FormatUint(NextID(), 10))
	return r
}
