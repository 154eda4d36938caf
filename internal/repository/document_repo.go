package repository

import (
	"context"

	"drivemind/internal/domain"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *domain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByDriveID(ctx context.Context, driveID string) (*domain.Document, error) {
	var d domain.Document
	tx := r.db.WithContext(ctx).
		Where("drive_id = ?", driveID).
		First(&d)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &d, nil
}

func (r *DocumentRepository) List(ctx context.Context) ([]domain.Document, error) {
	var documents []domain.Document
	tx := r.db.WithContext(ctx).Find(&documents)
	return documents, tx.Error
}
