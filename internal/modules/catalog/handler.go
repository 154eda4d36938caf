package catalog

import (
	"errors"
	"log"
	"net/http"
	"time"

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
	r.POST("/upload-document", h.UploadDocument)
	r.GET("/folders", h.ListFolders)
	r.GET("/documents", h.ListDocuments)
}

// UploadDocument handles POST /upload-document. Folder items (by mime type)
// route to the folder upsert; everything else becomes a document row.
func (h *Handler) UploadDocument(c *gin.Context) {
	var req UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	log.Printf("received document upload: title=%q file_type=%s drive_id=%s file_id=%s uploaded_by=%d",
		req.Title, req.FileType, req.DriveID, req.FileID, req.UploadedBy)

	driveID := req.DriveID
	if driveID == "" {
		driveID = req.FileID
	}
	if driveID == "" {
		response.Error(c, http.StatusBadRequest, "MISSING_DRIVE_ID", ErrMissingDriveID.Error())
		return
	}

	uploadDate := time.Now().UTC()
	if req.UploadDate != nil {
		uploadDate = *req.UploadDate
	}

	if req.FileType == FolderMimeType {
		folder, err := h.service.UpsertFolder(c.Request.Context(), UpsertFolderInput{
			Name:          req.Title,
			ParentDriveID: req.FolderID,
			DrivePath:     req.FileURL,
			CreatedBy:     req.UploadedBy,
			CreatedDate:   uploadDate,
			DriveFolderID: driveID,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Folder upserted", "folder_id": folder.ID})
		return
	}

	doc, err := h.service.UpsertDocument(c.Request.Context(), UpsertDocumentInput{
		Title:         req.Title,
		FileType:      req.FileType,
		FileSize:      int64(req.FileSize),
		FolderDriveID: req.FolderID,
		DriveID:       driveID,
		UploadedBy:    req.UploadedBy,
		UploadDate:    uploadDate,
		FileURL:       req.FileURL,
		Tags:          req.Tags,
	})
	if err != nil {
		if errors.Is(err, ErrUploaderNotFound) {
			response.Error(c, http.StatusNotFound, "UNKNOWN_UPLOADER", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document upserted", "document_id": doc.ID})
}

// ListFolders handles GET /folders: a full unfiltered scan.
func (h *Handler) ListFolders(c *gin.Context) {
	folders, err := h.service.ListFolders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, folders)
}

// ListDocuments handles GET /documents.
func (h *Handler) ListDocuments(c *gin.Context) {
	documents, err := h.service.ListDocuments(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
		return
	}
	c.JSON(http.StatusOK, documents)
}
