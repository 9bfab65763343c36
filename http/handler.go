package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/xid"
	log "github.com/sirupsen/logrus"
)

const (
	HeaderAllowOrigin = "Access-Control-Allow-Origin"
	HeaderRequestID   = "X-Request-Id"
)

// withCORS sets the header before the file server runs, so 404, 403 and
// redirect responses carry it as well.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderAllowOrigin, "*")
		next.ServeHTTP(w, r)
	})
}

func (s *Service) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := xid.New().String()
		w.Header().Set(HeaderRequestID, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.log.WithFields(log.Fields{
			"request": id,
			"status":  status,
		}).Infof("%s %s %s", r.RemoteAddr, r.Method, r.URL.Path)
	})
}
