package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// logRequestError logs a handler error with request correlation.
func logRequestError(r *http.Request, op string, err error) {
	if zlog != nil {
		z := zlog.Warn().Str("path", r.URL.Path).Str("op", op)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Err(err).Msg("request failed")
		return
	}
	log.Printf("%s failed path=%s err=%v", op, r.URL.Path, err)
}
