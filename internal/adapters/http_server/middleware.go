package httpserver

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"hotel_merge/internal/adapters/observability"
	"hotel_merge/internal/app"
)

// Observe records request metrics and writes one access log line per request.
// Catalog reads also log which hotel or filter they asked for.
func Observe(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := routeOf(r)
			dur := time.Since(start)
			observability.ObserveHTTP(route, r.Method, status, dur)

			ev := l.Info().
				Str("route", route).
				Str("method", r.Method).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", dur).
				Str("remote", remoteIP(r)).
				Str("request_id", chimw.GetReqID(r.Context()))
			if id := chi.URLParam(r, "id"); id != "" {
				ev = ev.Str("hotel_id", id)
			}
			q := r.URL.Query()
			if ids := app.ParseIDList(q.Get("hotel_ids")); len(ids) > 0 {
				ev = ev.Strs("hotel_ids", ids)
			}
			if ids := app.ParseIDList(q.Get("destination_ids")); len(ids) > 0 {
				ev = ev.Strs("destination_ids", ids)
			}
			ev.Msg("http_request")
		})
	}
}

// routeOf prefers the matched chi pattern so ids do not explode metric cardinality.
func routeOf(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}

// RemoteAddr has already been rewritten by chimw.RealIP.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
