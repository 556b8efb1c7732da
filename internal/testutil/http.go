package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Route is a canned upstream response.
type Route struct {
	Status int
	Body   string
}

// UpstreamServer serves routes keyed by "path?rawquery" (or just path) and counts requests.
// Unknown routes answer 404.
func UpstreamServer(t *testing.T, routes map[string]Route) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		route, ok := routes[r.URL.Path+"?"+r.URL.RawQuery]
		if !ok {
			route, ok = routes[r.URL.Path]
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		status := route.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(route.Body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}
