package httpx

import (
	"crypto/subtle"
	"net/http"
)

// requireAPIKey guards mutating endpoints with the static key from config.
// An empty configured key leaves the endpoint disabled rather than open.
func requireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := depCfg.IngestAPIKey
		if key == "" {
			writeJSON(w, http.StatusForbidden, HTTPError{Error: "endpoint disabled"})
			return
		}
		got := r.Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			writeJSON(w, http.StatusUnauthorized, HTTPError{Error: "unauthorized"})
			return
		}
		next(w, r)
	}
}
