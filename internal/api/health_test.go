package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type assertErr struct{}

func (assertErr) Error() string { return "err" }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		pingErr  bool
		path     string
		want     int
		wantBody string
	}{
		{name: "healthz ok", pingErr: false, path: "/healthz", want: 200, wantBody: `"service":"cryptopulse"`},
		{name: "readyz ok", pingErr: false, path: "/readyz", want: 200, wantBody: `"status":"ready"`},
		{name: "readyz degraded", pingErr: true, path: "/readyz", want: 503, wantBody: "database unreachable"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ping func() error
			if tc.path == "/readyz" {
				if tc.pingErr {
					ping = func() error { return assertErr{} }
				} else {
					ping = func() error { return nil }
				}
			}

			r := gin.New()
			NewHealthHandler(ping).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
			if !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Fatalf("body %s missing %q", w.Body.String(), tc.wantBody)
			}
		})
	}
}
