package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/anushka369/Marketing-Mavericks-Agent/pkg/utils"
)

// ResponseTimeout enforces a hard response deadline independent of any
// handler-level racing: if the wrapped handler has not finished when the
// deadline expires, the client receives 408 and the handler's eventual
// output is discarded. The handler observes the deadline through its
// request context.
func ResponseTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			buffered := newBufferedWriter()
			done := make(chan struct{})
			go func() {
				next.ServeHTTP(buffered, r.WithContext(ctx))
				close(done)
			}()

			select {
			case <-done:
				buffered.copyTo(w)
			case <-ctx.Done():
				utils.RespondError(w, http.StatusRequestTimeout, "Request timed out. Please try again.")
			}
		})
	}
}

// bufferedWriter captures the handler's response so nothing reaches the
// client before the deadline race is decided.
type bufferedWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header), status: http.StatusOK}
}

func (b *bufferedWriter) Header() http.Header { return b.header }

func (b *bufferedWriter) WriteHeader(status int) {
	if !b.wroteHeader {
		b.status = status
		b.wroteHeader = true
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedWriter) copyTo(w http.ResponseWriter) {
	for key, values := range b.header {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}
