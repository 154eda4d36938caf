package catalog

import (
	"context"

	"drivemind/internal/domain"
)

type FolderRepositoryInterface interface {
	Create(ctx context.Context, f *domain.Folder) error
	GetByDriveID(ctx context.Context, driveFolderID string) (*domain.Folder, error)
	List(ctx context.Context) ([]domain.Folder, error)
}

type DocumentRepositoryInterface interface {
	Create(ctx context.Context, d *domain.Document) error
	GetByDriveID(ctx context.Context, driveID string) (*domain.Document, error)
	List(ctx context.Context) ([]domain.Document, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
