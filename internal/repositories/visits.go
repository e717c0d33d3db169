package repositories

import (
	"context"
	"time"

	"github.com/kmureithi/devfolio/internal/domain/models"
	"gorm.io/gorm"
)

type Visits struct {
	db *gorm.DB
}

func NewVisitsRepository(db *gorm.DB) *Visits {
	return &Visits{db: db}
}

func (repo *Visits) Add(ctx context.Context, visit models.Visit) error {
	return repo.db.WithContext(ctx).Create(&visit).Error
}

func (repo *Visits) RemoveOldVisits(ctx context.Context, expirationTime time.Time) (int64, error) {
	res := repo.db.WithContext(ctx).Delete(&models.Visit{}, "created_at < ?", expirationTime)
	return res.RowsAffected, res.Error
}

func (repo *Visits) GetCountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&models.Visit{}).Where("created_at >= ?", since).
		Count(&count).Error
	return count, err
}
