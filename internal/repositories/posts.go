package repositories

import (
	"context"
	"time"

	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Posts struct {
	db *gorm.DB
}

func NewPostsRepository(db *gorm.DB) *Posts {
	return &Posts{db: db}
}

func (repo *Posts) Add(ctx context.Context, post *models.JobPost) error {
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := repo.db.WithContext(ctx).Create(post).Error; err != nil {
		return errors.Wrap(err, "failed to create job post")
	}
	return nil
}

// Get returns every post, newest first.
func (repo *Posts) Get(ctx context.Context) ([]models.JobPost, error) {

	var posts []models.JobPost
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job posts")
	}
	return posts, nil
}

func (repo *Posts) GetByID(ctx context.Context, id uint) (*models.JobPost, error) {

	var post models.JobPost
	if err := repo.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to get job post")
	}
	return &post, nil
}

func (repo *Posts) GetCountByAuthor(ctx context.Context, authorID uint) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.JobPost{}).Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
