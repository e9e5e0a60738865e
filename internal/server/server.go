package server

import (
	"io"
	"net/http"

	"image-describer/internal/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Server struct {
	cfg config.Config
	log zerolog.Logger
}

func New(cfg config.Config) *Server {
	return &Server{
		cfg: cfg,
		log: log.Logger.With().Str("component", "server").Logger(),
	}
}

// WithLogger replaces the server logger.
func (s *Server) WithLogger(logger zerolog.Logger) *Server {
	s.log = logger
	return s
}

func (s *Server) Handler() http.Handler {
	registerValidators()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(s.requestLogger())
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, s.recoverPanic))
	router.Use(cors.New(corsConfig()))

	router.POST("/process_image", s.handleProcessImage)
	router.NoMethod(func(c *gin.Context) {
		writeError(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})
	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "Not Found")
	})
	return router
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{http.MethodPost, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}
