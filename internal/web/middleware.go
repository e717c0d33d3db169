package web

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/metrics"
	log "github.com/sirupsen/logrus"
)

const accountContextKey = "account"

func (s *Server) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err == nil && token != "" {
			if account := s.sessions.Resolve(c.Request.Context(), token); account != nil {
				c.Set(accountContextKey, account)
			}
		}
		c.Next()
	}
}

// currentAccount returns the signed-in viewer's account, or nil.
func currentAccount(c *gin.Context) *models.Account {
	value, exists := c.Get(accountContextKey)
	if !exists {
		return nil
	}
	return value.(*models.Account)
}

func (s *Server) visitTrackingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") ||
			strings.HasPrefix(path, "/metrics") {
			c.Next()
			return
		}

		// Respect Do Not Track.
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		metrics.PageViewsCounter.WithLabelValues(path).Inc()
		go s.trackVisit(s.hashIP(c.ClientIP()), c.GetHeader("User-Agent"), path)
		c.Next()
	}
}

func (s *Server) trackVisit(hashedIP, userAgent, path string) {
	err := s.visits.Add(context.Background(), models.Visit{
		HashedIP:  hashedIP,
		UserAgent: userAgent,
		Path:      path,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to record visit: %v", err)
	}
}

// hashIP stores a salted hash instead of the raw address; the salt rotates
// on every restart, so hashes are only comparable within a process run.
func (s *Server) hashIP(ip string) string {
	hash := sha256.Sum256([]byte(ip + s.hashingSalt))
	return hex.EncodeToString(hash[:])[:16]
}
