package middleware

import (
	"bytes"
	"encoding/json"
	"time"

	"pet-world-gateway/internal/core/domain"
	"pet-world-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"
	HeaderReplayed       = "Idempotent-Replayed"

	maxIdempotencyKeyLen = 128
)

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type captureWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response when a write intent is retried
// with the same Idempotency-Key in the same session. Requests without the
// header pass through. Cache failures degrade to no replay.
func Idempotency(cache ports.IdempotencyCache, action domain.Action, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientKey := c.GetHeader(HeaderIdempotencyKey)
		sessionID := SessionID(c)
		if clientKey == "" || len(clientKey) > maxIdempotencyKeyLen || sessionID == uuid.Nil {
			c.Next()
			return
		}
		key := domain.BuildIdempotencyKey(sessionID, action, clientKey)

		cached, err := cache.Get(c.Request.Context(), key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed")
		} else if cached != nil {
			var stored storedResponse
			if err := json.Unmarshal(cached, &stored); err == nil {
				c.Header(HeaderReplayed, "true")
				c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
				c.Abort()
				return
			}
		}

		cw := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = cw
		c.Next()

		status := cw.Status()
		if status < 200 || status >= 300 || cw.buf.Len() == 0 {
			return
		}
		payload, err := json.Marshal(storedResponse{Status: status, Body: cw.buf.Bytes()})
		if err != nil {
			return
		}
		if err := cache.Set(c.Request.Context(), key, payload, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency store failed")
		}
	}
}
