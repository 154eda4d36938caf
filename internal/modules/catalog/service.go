package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"drivemind/internal/domain"

	"gorm.io/gorm"
)

const (
	// FolderMimeType marks a drive item that is a folder, not a file.
	FolderMimeType = "application/vnd.google-apps.folder"

	// Workspace-native documents are edited in place and report no stable
	// byte size, so their size is forced to zero on ingestion.
	workspaceMimePrefix = "application/vnd.google-apps."
)

// Service reconciles the external drive tree with the local mirror. Upserts
// are create-if-absent: a drive id that already exists returns the stored row
// unchanged, with no field-level merge.
type Service struct {
	folders   FolderRepositoryInterface
	documents DocumentRepositoryInterface
	users     UserReader
}

func NewService(folders FolderRepositoryInterface, documents DocumentRepositoryInterface, users UserReader) *Service {
	return &Service{folders: folders, documents: documents, users: users}
}

type UpsertFolderInput struct {
	Name          string
	ParentDriveID string
	DrivePath     string
	CreatedBy     int64
	CreatedDate   time.Time
	DriveFolderID string
}

func (s *Service) UpsertFolder(ctx context.Context, in UpsertFolderInput) (*domain.Folder, error) {
	parentID, err := s.resolveFolderRef(ctx, in.ParentDriveID)
	if err != nil {
		return nil, err
	}

	existing, err := s.folders.GetByDriveID(ctx, in.DriveFolderID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	createdBy := in.CreatedBy
	folder := &domain.Folder{
		DriveFolderID: in.DriveFolderID,
		FolderName:    in.Name,
		ParentID:      parentID,
		DrivePath:     in.DrivePath,
		CreatedBy:     &createdBy,
		CreatedDate:   in.CreatedDate,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

type UpsertDocumentInput struct {
	Title         string
	FileType      string
	FileSize      int64
	FolderDriveID string
	DriveID       string
	UploadedBy    int64
	UploadDate    time.Time
	FileURL       string
	Tags          string
}

func (s *Service) UpsertDocument(ctx context.Context, in UpsertDocumentInput) (*domain.Document, error) {
	if _, err := s.users.GetByID(ctx, in.UploadedBy); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploaderNotFound
		}
		return nil, err
	}

	folderID, err := s.resolveFolderRef(ctx, in.FolderDriveID)
	if err != nil {
		return nil, err
	}

	existing, err := s.documents.GetByDriveID(ctx, in.DriveID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fileSize := in.FileSize
	if strings.HasPrefix(in.FileType, workspaceMimePrefix) {
		fileSize = 0
	}

	uploadedBy := in.UploadedBy
	doc := &domain.Document{
		Title:      in.Title,
		FileType:   in.FileType,
		FileSize:   fileSize,
		FolderID:   folderID,
		DriveID:    in.DriveID,
		UploadedBy: &uploadedBy,
		UploadDate: in.UploadDate,
		FileURL:    in.FileURL,
		Tags:       in.Tags,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	return s.folders.List(ctx)
}

func (s *Service) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documents.List(ctx)
}

// resolveFolderRef maps a drive folder id to the local row id. An unknown or
// empty reference resolves to nil — the tree arrives out of order, so a
// missing parent is tolerated, never an error.
func (s *Service) resolveFolderRef(ctx context.Context, driveFolderID string) (*int64, error) {
	if driveFolderID == "" {
		return nil, nil
	}
	folder, err := s.folders.GetByDriveID(ctx, driveFolderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	id := folder.ID
	return &id, nil
}
