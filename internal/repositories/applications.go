package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ErrDuplicateApplication is returned when the unique (post, account) index
// rejects an insert, i.e. the account already applied to the post.
var ErrDuplicateApplication = errors.New("application already exists")

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

func (repo *Applications) Add(ctx context.Context, postID, accountID uint) (*models.Application, error) {

	application := models.Application{
		PostID:    postID,
		AccountID: accountID,
		CreatedAt: time.Now().UTC(),
	}
	if err := repo.db.WithContext(ctx).Create(&application).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateApplication
		}
		return nil, errors.Wrap(err, "failed to create application")
	}
	return &application, nil
}

func (repo *Applications) Exists(ctx context.Context, postID, accountID uint) (bool, error) {

	var application models.Application
	err := repo.db.WithContext(ctx).
		Where("post_id = ? AND account_id = ?", postID, accountID).
		First(&application).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to check application")
	}
	return true, nil
}

// AppliedPostIDs returns every post the account applied to as a set, so the
// listing view resolves all cards with a single query.
func (repo *Applications) AppliedPostIDs(ctx context.Context, accountID uint) (map[uint]struct{}, error) {

	var applications []models.Application
	if err := repo.db.WithContext(ctx).Find(&applications, "account_id = ?", accountID).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return lo.SliceToMap(applications, func(a models.Application) (uint, struct{}) {
		return a.PostID, struct{}{}
	}), nil
}

func (repo *Applications) GetCountByPost(ctx context.Context, postID uint) (int64, error) {

	var count int64
	if err := repo.db.WithContext(ctx).Model(&models.Application{}).Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
