package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockbook/backend/internal/domain/shared"
	"github.com/stockbook/backend/internal/interfaces/http/dto"
)

// IdempotencyKeyHeader is the header clients send to deduplicate retries
const IdempotencyKeyHeader = "Idempotency-Key"

// Idempotency rejects repeated requests carrying an already-seen
// Idempotency-Key. Requests without the header pass through unchanged.
// Store failures fail open so a cache outage does not block writes.
func Idempotency(store shared.IdempotencyStore, cfg shared.IdempotencyConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Enabled {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		fresh, err := store.MarkProcessed(c.Request.Context(), key, cfg.TTL)
		if err != nil {
			if logger != nil {
				logger.Error("Idempotency check failed",
					zap.String("key", key),
					zap.Error(err))
			}
			c.Next()
			return
		}

		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict,
				dto.NewErrorResponse("DUPLICATE_REQUEST", "A request with this idempotency key was already processed"))
			return
		}

		c.Next()
	}
}
