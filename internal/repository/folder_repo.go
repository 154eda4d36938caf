package repository

import (
	"context"

	"drivemind/internal/domain"

	"gorm.io/gorm"
)

type FolderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

func (r *FolderRepository) Create(ctx context.Context, f *domain.Folder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// GetByDriveID looks a folder up by its external drive id, the natural key
// used for idempotent upserts.
func (r *FolderRepository) GetByDriveID(ctx context.Context, driveFolderID string) (*domain.Folder, error) {
	var f domain.Folder
	tx := r.db.WithContext(ctx).
		Where("drive_folder_id = ?", driveFolderID).
		First(&f)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &f, nil
}

func (r *FolderRepository) List(ctx context.Context) ([]domain.Folder, error) {
	var folders []domain.Folder
	tx := r.db.WithContext(ctx).Find(&folders)
	return folders, tx.Error
}
