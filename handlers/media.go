package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadMedia stores a video file (field "data") and an optional
// thumbnail (field "cover") in object storage, returning the public
// URLs to put in the create payload.
func (h *Handler) UploadMedia(c *gin.Context) {
	if h.Media == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "media storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	videoURL, err := h.Media.UploadVideo(ctx, file, header.Size, header.Filename)
	if err != nil {
		log.Error().Err(err).Msg("video upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store video"})
		return
	}

	var thumbnailURL string
	if cover, coverHeader, err := c.Request.FormFile("cover"); err == nil {
		defer cover.Close()
		thumbnailURL, err = h.Media.UploadThumbnail(ctx, cover, coverHeader.Size, coverHeader.Filename)
		if err != nil {
			log.Warn().Err(err).Msg("thumbnail upload failed")
			thumbnailURL = ""
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"video_url":     videoURL,
		"thumbnail_url": thumbnailURL,
	})
}
