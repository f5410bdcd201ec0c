package emulator

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/logger"
	"github.com/MKhiriev/studytrack/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

func (h *Handler) withAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.apiKey != "" && r.Header.Get(utils.APIKeyHeader) != h.apiKey {
			utils.WriteError(w, http.StatusForbidden, app.CodePermissionDenied, "invalid api key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) withFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.requests.Add(1)
		if f, ok := h.faults.next(); ok {
			logger.FromRequest(r).Warn().
				Int("status", f.status).
				Str("code", f.code).
				Msg("injected fault")
			utils.WriteError(w, f.status, f.code, "injected fault")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth requires a valid, unrevoked identity token and records its subject
// as the caller with [utils.WithCallerID].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, http.StatusUnauthorized, app.CodeUnauthenticated, err.Error())
			return
		}

		token, err := utils.ParseSessionToken(tokenString, h.signKey, tokenIssuer, h.clock.Now())
		if err != nil || h.identity.isRevoked(tokenString) {
			log.Err(err).Msg("rejected identity token")
			utils.WriteError(w, http.StatusUnauthorized, app.CodeUnauthenticated, "invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCallerID(r.Context(), token.UserID())))
	})
}

// responseWriter records the status and body size of a response.
type responseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
