package repository

import (
	"context"

	"drivemind/internal/domain"

	"gorm.io/gorm"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var a domain.Admin
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&a)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}
