package rag

import (
	"net/http"

	"drivemind/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/upload", h.Upload)
	r.POST("/ask", h.Ask)
}

// Upload handles POST /upload: multipart "file" plus form field "question".
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FILE", "file is required")
		return
	}
	question := c.PostForm("question")
	if question == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_QUESTION", "question is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read uploaded file")
		return
	}
	defer file.Close()

	answer, err := h.service.IngestAndAnswer(c.Request.Context(), file, fileHeader.Filename, question)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// Ask handles POST /ask: answers against previously indexed documents only.
func (h *Handler) Ask(c *gin.Context) {
	question := c.PostForm("question")
	if question == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_QUESTION", "question is required")
		return
	}

	answer, err := h.service.Answer(c.Request.Context(), question)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
