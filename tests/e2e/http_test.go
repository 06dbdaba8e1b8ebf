package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/getmockd/conneg/pkg/config"
	"github.com/getmockd/conneg/pkg/negotiate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const serverConfig = `
profiles:
  - name: api
    paths: ["/api/**"]
    offers: [application/json, application/xml, application/yaml]
  - name: text
    paths: ["/motd"]
    offers: [text/plain; charset=utf-8]
`

type pet struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg, err := config.Parse([]byte(serverConfig), config.FormatYAML)
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/pets", func(w http.ResponseWriter, r *http.Request) {
		_ = negotiate.Render(w, r, http.StatusOK, []pet{{ID: 1, Name: "rex"}})
	})
	mux.HandleFunc("/motd", func(w http.ResponseWriter, r *http.Request) {
		_ = negotiate.Render(w, r, http.StatusOK, "hello")
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(negotiate.ProfileMiddleware(cfg)(mux))
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url, accept string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHTTPNegotiation(t *testing.T) {
	srv := newServer(t)

	t.Run("json by default", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/api/pets", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		assert.Equal(t, "Accept", resp.Header.Get("Vary"))
		assert.JSONEq(t, `[{"id":1,"name":"rex"}]`, body)
	})

	t.Run("xml for browsers", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/api/pets", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/xml", resp.Header.Get("Content-Type"))
		assert.Contains(t, body, "<name>rex</name>")
	})

	t.Run("yaml on request", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/api/pets", "application/yaml")
		assert.Equal(t, "application/yaml", resp.Header.Get("Content-Type"))
		assert.Contains(t, body, "name: rex")
	})

	t.Run("406 lists offers", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/api/pets", "image/png")
		assert.Equal(t, http.StatusNotAcceptable, resp.StatusCode)

		var payload struct {
			Details struct {
				Available []string `json:"available"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &payload))
		assert.Equal(t, []string{"application/json", "application/xml", "application/yaml"}, payload.Details.Available)
	})

	t.Run("offer parameters reach content type", func(t *testing.T) {
		resp, body := get(t, srv.URL+"/motd", "text/*")
		assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, "hello\n", body)
	})

	t.Run("uncovered paths skip negotiation", func(t *testing.T) {
		resp, _ := get(t, srv.URL+"/health", "image/png")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Vary"))
	})
}
