package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/udeaghad/ravenpay/internal/usecase"
)

// IdempotencyKeyHeader names the header callers set to opt in to
// exactly-once semantics for a mutating request.
const IdempotencyKeyHeader = "Idempotency-Key"

// processingMarker is the placeholder stored while the first request with a
// key is still in flight.
const processingMarker = "processing"

// IdempotencyMiddleware replays cached responses for repeated mutating
// requests carrying the same Idempotency-Key. The ledger core itself does not
// deduplicate by counterparty reference; callers that need exactly-once
// deposits opt in through this header.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
	ttl   time.Duration
}

func NewIdempotencyMiddleware(store usecase.IdempotencyStore) *IdempotencyMiddleware {
	return &IdempotencyMiddleware{store: store, ttl: 24 * time.Hour}
}

// Wrap wraps an http.Handler with idempotency checking. Reads and keyless
// requests pass through untouched. A store failure rejects the request
// rather than risking a double movement.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		seen, cached, err := m.store.CheckAndSet(r.Context(), key, nil, m.ttl)
		if err != nil {
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if seen && cached != nil && string(cached) != processingMarker {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")
			w.Write(cached)
			return
		}

		rec := &responseRecorder{ResponseWriter: w, body: &bytes.Buffer{}, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Only successful outcomes are worth replaying; a failed movement
		// should be retryable with the same key.
		if rec.status >= 200 && rec.status < 300 {
			m.store.Update(r.Context(), key, rec.body.Bytes(), m.ttl)
		}
	})
}

// responseRecorder tees the response body so a success can be stored for
// future replays.
type responseRecorder struct {
	http.ResponseWriter

	status int
	body   *bytes.Buffer
}

func (r *responseRecorder) Write(p []byte) (int, error) {
	r.body.Write(p)
	return r.ResponseWriter.Write(p)
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
