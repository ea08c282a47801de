package httpx

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

const (
	encodingBrotli = "br"
	encodingGzip   = "gzip"
)

// Compress encodes response bodies with brotli or gzip based on Accept-Encoding.
// Responses without a body are passed through unencoded.
func Compress() Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")
			encoding := negotiateEncoding(r.Header.Get("Accept-Encoding"))
			if encoding == "" || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			cw := &compressWriter{ResponseWriter: w, encoding: encoding}
			defer cw.Close()
			next.ServeHTTP(cw, r)
		})
	}
}

// negotiateEncoding picks brotli over gzip when both are acceptable.
func negotiateEncoding(header string) string {
	accepted := map[string]bool{}
	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		accepted[name] = qualityOf(params) > 0
	}
	for _, candidate := range []string{encodingBrotli, encodingGzip} {
		if ok, listed := accepted[candidate]; listed {
			if ok {
				return candidate
			}
			continue
		}
		if accepted["*"] {
			return candidate
		}
	}
	return ""
}

func qualityOf(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || strings.TrimSpace(key) != "q" {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return q
	}
	return 1
}

type compressWriter struct {
	http.ResponseWriter
	encoding string
	status   int
	encoder  io.WriteCloser
	started  bool
}

func (c *compressWriter) WriteHeader(status int) {
	if c.started || c.status != 0 {
		return
	}
	c.status = status
}

func (c *compressWriter) Write(b []byte) (int, error) {
	if !c.started {
		// An empty write says nothing about the body yet.
		if len(b) == 0 {
			return 0, nil
		}
		c.start(true)
	}
	if c.encoder == nil {
		return c.ResponseWriter.Write(b)
	}
	return c.encoder.Write(b)
}

func (c *compressWriter) start(hasBody bool) {
	c.started = true
	header := c.Header()
	if hasBody && header.Get("Content-Encoding") == "" &&
		c.status != http.StatusNoContent && c.status != http.StatusNotModified {
		header.Set("Content-Encoding", c.encoding)
		header.Del("Content-Length")
		switch c.encoding {
		case encodingBrotli:
			c.encoder = brotli.NewWriterLevel(c.ResponseWriter, brotli.DefaultCompression)
		default:
			c.encoder = gzip.NewWriter(c.ResponseWriter)
		}
	}
	if c.status != 0 {
		c.ResponseWriter.WriteHeader(c.status)
	}
}

// Close flushes the encoder. A handler that never wrote still gets its status.
func (c *compressWriter) Close() error {
	if !c.started {
		c.start(false)
	}
	if c.encoder == nil {
		return nil
	}
	return c.encoder.Close()
}

func (c *compressWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}
