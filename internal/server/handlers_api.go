package server

import (
	"net/http"

	"image-describer/internal/imaging"

	"github.com/gin-gonic/gin"
)

const errNoImage = "No image provided"

type processImageRequest struct {
	Image *string `json:"image" binding:"required"`
}

var processImageMessages = fieldMessages{
	"image": {"required": errNoImage},
}

func (s *Server) handleProcessImage(c *gin.Context) {
	var req processImageRequest
	if !bindJSON(c, &req, processImageMessages, errNoImage) {
		return
	}

	meta, err := imaging.Process(*req.Image)
	if err != nil {
		s.log.Warn().Err(err).Int("payload_len", len(*req.Image)).Msg("image processing failed")
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Debug().
		Int("width", meta.Width).
		Int("height", meta.Height).
		Str("format", meta.Format).
		Str("mode", meta.Mode).
		Msg("image described")
	writeJSON(c, http.StatusOK, gin.H{
		"description": imaging.Describe(meta, s.cfg.DescriptionSignature),
	})
}
