package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vikalpis/scroll-app/models"
	"github.com/vikalpis/scroll-app/service"
)

// ListVideos serves the public feed. No session required.
func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.Catalog.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("feed query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

func (h *Handler) CreateVideo(c *gin.Context) {
	var in models.VideoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	video, err := h.Catalog.Create(c.Request.Context(), in, identityFrom(c))
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		case errors.Is(err, service.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		default:
			log.Error().Err(err).Msg("video create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create video"})
		}
		return
	}
	c.JSON(http.StatusCreated, video)
}
