package middleware

import (
	"net/http"
	"path"
	"strings"
)

// AddSlash returns middleware that redirects requests without a trailing slash
// to the slash form, unless the last segment has a file extension.
// GET and HEAD receive 301; other methods receive 308 so the body is replayed.
//
// The Location is relative to the last segment so it resolves correctly when
// the handler is mounted behind a stripped prefix.
func AddSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := r.URL.Path
			if strings.HasSuffix(p, "/") || hasFileExtension(p) {
				next.ServeHTTP(w, r)
				return
			}

			target := path.Base(p) + "/"
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			status := http.StatusPermanentRedirect
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				status = http.StatusMovedPermanently
			}

			w.Header().Set("Location", target)
			w.WriteHeader(status)
		})
	}
}

func hasFileExtension(p string) bool {
	lastSlash := strings.LastIndex(p, "/")
	lastDot := strings.LastIndex(p, ".")
	return lastDot > lastSlash
}
