package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = s.log.Warn()
		case status >= http.StatusBadRequest:
			event = s.log.Info()
		default:
			event = s.log.Debug()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request handled")
	}
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	s.log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("handler panicked")
	writeError(c, http.StatusInternalServerError, fmt.Sprint(recovered))
}
