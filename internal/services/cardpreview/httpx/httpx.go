// Package httpx provides the HTTP middleware used by the card preview service.
package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the request correlation id.
const RequestIDHeader = "X-Request-ID"

// CardPathValue is the route wildcard naming the card a request targets.
const CardPathValue = "name"

const (
	tracerName = "github.com/louisbranch/cardrow/internal/services/cardpreview/httpx"

	maxRequestIDLen = 64
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler so the first middleware listed sees the request first.
// Nil entries are skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for _, mw := range slices.Backward(middleware) {
		if mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

// RequireMethod answers 405 with an Allow list for methods outside methods.
func RequireMethod(methods ...string) Middleware {
	allow := strings.Join(methods, ", ")
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(methods, r.Method) {
				w.Header().Set("Allow", allow)
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestID echoes a well-formed incoming request id or mints a UUID in its
// place, so ids that reach the logs are always single printable tokens.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if !validRequestID(requestID) {
				requestID = uuid.NewString()
			}
			r.Header.Set(RequestIDHeader, requestID)
			w.Header().Set(RequestIDHeader, requestID)
			next.ServeHTTP(w, r)
		})
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}

// RecoverPanic converts panics into HTTP 500 responses. The log line names
// the card being rendered when the panic came from a card route; install it
// inside Trace so the failed span carries the 500.
func RecoverPanic(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				logger.Printf(
					"card render panic card=%s route=%s path=%s request_id=%s panic=%v stack=%s",
					cardOrDash(r),
					routeOrDash(r),
					r.URL.Path,
					requestIDOrDash(r),
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request once the handler returns.
func RequestLogger(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			logger.Printf(
				"request method=%s path=%s status=%d route=%s card=%s duration=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.status,
				routeOrDash(r),
				cardOrDash(r),
				time.Since(start).Round(time.Microsecond),
				requestIDOrDash(r),
			)
		})
	}
}

// Trace starts a server span per request using the global tracer provider.
// Once routing has happened the span is renamed to the matched pattern, so
// every card shares one span name and carries its own card attribute.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
					attribute.String("cardrow.request_id", requestIDOrDash(r)),
				),
			)
			defer span.End()

			rec := newStatusRecorder(w)
			traced := r.WithContext(ctx)
			next.ServeHTTP(rec, traced)
			if traced.Pattern != "" {
				span.SetName(r.Method + " " + routePath(traced.Pattern))
				span.SetAttributes(attribute.String("http.route", traced.Pattern))
			}
			if card := traced.PathValue(CardPathValue); card != "" {
				span.SetAttributes(attribute.String("cardrow.card", card))
			}
			span.SetAttributes(attribute.Int("http.response.status_code", rec.status))
			if rec.status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(rec.status))
			}
		})
	}
}

// routePath drops a method prefix from a mux pattern such as "GET /cards/{name}".
func routePath(pattern string) string {
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wroteHeader = true
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func requestIDOrDash(r *http.Request) string {
	return orDash(r.Header.Get(RequestIDHeader))
}

// cardOrDash reads the card wildcard. It is only set after the mux routed r.
func cardOrDash(r *http.Request) string {
	return orDash(r.PathValue(CardPathValue))
}

func routeOrDash(r *http.Request) string {
	return orDash(r.Pattern)
}

func orDash(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "-"
}
