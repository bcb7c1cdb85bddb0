package generate

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adelitolak-a11y/restaurant-menu-api/internal/assemble"
	"github.com/adelitolak-a11y/restaurant-menu-api/internal/history"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// documentView exposes a serialized document as text instead of base64.
type documentView struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func viewDocuments(bundle assemble.Bundle) []documentView {
	out := make([]documentView, 0, len(bundle.Documents))
	for _, d := range bundle.Documents {
		out = append(out, documentView{Name: d.Name, Content: string(d.Data)})
	}
	return out
}

// --------------------------------------------------
// Manual entry: classified mapping in, documents out
// --------------------------------------------------
func (h *Handler) Generate(c *gin.Context) {
	var req Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.GenerateFromMapping(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generation_id": result.GenerationID,
		"stats":         result.Stats,
		"documents":     viewDocuments(result.Bundle),
	})
}

// --------------------------------------------------
// PDF upload: OCR + classification + generation
// --------------------------------------------------
func (h *Handler) GenerateFromPDF(c *gin.Context) {
	file, header, err := c.Request.FormFile("menu_file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "menu_file is required"})
		return
	}
	defer file.Close()

	if strings.ToLower(filepath.Ext(header.Filename)) != ".pdf" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only PDF uploads are supported"})
		return
	}

	pdf, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	var req Request
	if meta := c.PostForm("restaurant"); meta != "" {
		if err := json.Unmarshal([]byte(meta), &req.Restaurant); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant metadata"})
			return
		}
	}
	if variants := c.PostForm("variants"); variants != "" {
		if err := json.Unmarshal([]byte(variants), &req.Variants); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid variants"})
			return
		}
	}

	result, err := h.service.GenerateFromPDF(c.Request.Context(), pdf, req)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"generation_id":  result.GenerationID,
		"stats":          result.Stats,
		"classification": result.Classification,
		"documents":      viewDocuments(result.Bundle),
	})
}

// --------------------------------------------------
// Publish: deliver documents and banners to the sink
// --------------------------------------------------

type publishRequest struct {
	GenerationID string         `json:"generation_id,omitempty"`
	Documents    []documentView `json:"documents" binding:"required"`
	Images       []string       `json:"images,omitempty"`
}

func (h *Handler) Publish(c *gin.Context) {
	var req publishRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var bundle assemble.Bundle
	for _, d := range req.Documents {
		bundle.Documents = append(bundle.Documents, assemble.Document{
			Name: d.Name,
			Data: []byte(d.Content),
		})
	}
	bundle.Images = req.Images

	report, err := h.service.Publish(c.Request.Context(), req.GenerationID, bundle)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// --------------------------------------------------
// Generation record lookup
// --------------------------------------------------
func (h *Handler) GetGeneration(c *gin.Context) {
	g, err := h.service.GetGeneration(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "generation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
