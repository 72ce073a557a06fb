package api

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"

	imagepkg "github.com/youruser/menucard/internal/image"
	"github.com/youruser/menucard/internal/logger"
	"github.com/youruser/menucard/internal/menu"
	menuerrors "github.com/youruser/menucard/pkg/errors"
)

// Handler serves render requests with a shared renderer.
type Handler struct {
	renderer *imagepkg.Renderer
	quality  int
	log      *logger.Logger
}

// NewHandler builds a Handler. A nil log discards request logs.
func NewHandler(renderer *imagepkg.Renderer, quality int, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{renderer: renderer, quality: quality, log: log}
}

type renderRequest struct {
	Entries []menu.Entry `json:"entries"`
	// Seed makes the gradient hue reproducible.
	Seed *uint64 `json:"seed"`
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// render draws the posted entries and returns the encoded image.
func (h *Handler) render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for i, e := range req.Entries {
		if e.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "entries[" + strconv.Itoa(i) + "].title is required"})
			return
		}
	}

	format, contentType := imaging.JPEG, "image/jpeg"
	switch c.DefaultQuery("format", "jpeg") {
	case "jpeg", "jpg":
	case "png":
		format, contentType = imaging.PNG, "image/png"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be jpeg or png"})
		return
	}

	var hue imagepkg.HueSource
	if req.Seed != nil {
		hue = rand.New(rand.NewPCG(*req.Seed, 0))
	}

	img, err := h.renderer.Render(menu.NormalizeAll(req.Entries), hue)
	if errors.Is(err, menuerrors.ErrEmptyInput) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error(err, "render failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	buf := new(bytes.Buffer)
	if err := imagepkg.Encode(buf, img, format, h.quality); err != nil {
		h.log.Error(err, "encode failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// qr endpoint returns a PNG of a QR for "text" query param
func qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	size := 256
	if sizeStr := c.Query("size"); sizeStr != "" {
		v, err := strconv.Atoi(sizeStr)
		if err != nil || v < 16 || v > 2048 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer between 16 and 2048"})
			return
		}
		size = v
	}
	b, err := imagepkg.GenerateQRPNG(text, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]any{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request served")
	}
}
