package controller_test

import (
	"foodgram/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantNext    bool
		wantOrigin  string
		wantCookies string
	}{
		{
			name:       "preflight is answered directly",
			allowed:    []string{"*"},
			method:     http.MethodOptions,
			origin:     "http://localhost:3000",
			wantStatus: http.StatusNoContent,
			wantOrigin: "*",
		},
		{
			name:       "wildcard passes through",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusTeapot,
			wantNext:   true,
			wantOrigin: "*",
		},
		{
			name:        "listed origin is echoed",
			allowed:     []string{"http://localhost:3000", "https://foodgram.example"},
			method:      http.MethodPost,
			origin:      "https://foodgram.example",
			wantStatus:  http.StatusTeapot,
			wantNext:    true,
			wantOrigin:  "https://foodgram.example",
			wantCookies: "true",
		},
		{
			name:       "unknown origin gets no allow header",
			allowed:    []string{"https://foodgram.example"},
			method:     http.MethodGet,
			origin:     "https://evil.example",
			wantStatus: http.StatusTeapot,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/api/recipes/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			controller.WithCORS(tt.allowed)(next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Equal(t, tt.wantNext, called)
			require.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.wantCookies, rec.Header().Get("Access-Control-Allow-Credentials"))
			require.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
		})
	}
}
