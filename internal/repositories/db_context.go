package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(models.Account{})
	if err != nil {
		return fmt.Errorf("failed to migrate Account entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.JobPost{})
	if err != nil {
		return fmt.Errorf("failed to migrate JobPost entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Application{})
	if err != nil {
		return fmt.Errorf("failed to migrate Application entity: %w", err)
	}

	err = c.DB.AutoMigrate(models.Visit{})
	if err != nil {
		return fmt.Errorf("failed to migrate Visit entity: %w", err)
	}

	// One application per (post, account). The workflow checks before it
	// inserts, but two racing applies can both pass the check; this index
	// is the authoritative guard and its violation is read as "already
	// applied".
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_post_applicant ON applications (post_id, account_id);").
		Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
