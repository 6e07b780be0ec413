package middle

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"havjob/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AuditMiddlewareParams struct {
	fx.In

	DB     *gorm.DB
	Logger *zap.Logger
}

// AuditMiddleware persists every mutating API call to the messages table.
// Reads are skipped; an audit failure is logged but never blocks the request.
type AuditMiddleware struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewAuditMiddleware(p AuditMiddlewareParams) *AuditMiddleware {
	return &AuditMiddleware{
		db:     p.DB,
		logger: p.Logger,
	}
}

func (m *AuditMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			c.Next()
			return
		}
		// Credentials must not end up in the audit table.
		if strings.Contains(c.Request.URL.Path, "/auth/") || strings.Contains(c.Request.URL.Path, "/mobile/") {
			c.Next()
			return
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			data, err := io.ReadAll(c.Request.Body)
			if err != nil {
				m.logger.Error("failed to read request body", zap.Error(err))
			} else {
				bodyBytes = data
			}
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		msg := &db.Message{
			ID:          uuid.New().String(),
			MessageTime: time.Now().UnixNano(),
			HTTPMethod:  c.Request.Method,
			RawEndpoint: c.Request.URL.Path,
			HTTPBody:    string(bodyBytes),
		}
		if err := m.db.Create(msg).Error; err != nil {
			m.logger.Error("failed to log API call", zap.Error(err))
		}

		c.Next()
	}
}

// RequestLogger emits one zap line per request with method, path, status and
// latency.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
