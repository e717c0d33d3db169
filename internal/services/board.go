package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/events"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/metrics"
	"github.com/kmureithi/devfolio/internal/repositories"
	log "github.com/sirupsen/logrus"
)

var (
	ErrNotEligible    = errors.New("not eligible to apply")
	ErrAlreadyApplied = fmt.Errorf("already applied: %w", ErrNotEligible)
	ErrNotEmployer    = errors.New("only employer accounts can post jobs")
	ErrPostNotFound   = errors.New("job post not found")
)

type postReader interface {
	Get(ctx context.Context) ([]models.JobPost, error)
}

type postWriter interface {
	Add(ctx context.Context, post *models.JobPost) error
	GetByID(ctx context.Context, id uint) (*models.JobPost, error)
}

type applicationRepository interface {
	Add(ctx context.Context, postID, accountID uint) (*models.Application, error)
	Exists(ctx context.Context, postID, accountID uint) (bool, error)
	AppliedPostIDs(ctx context.Context, accountID uint) (map[uint]struct{}, error)
}

// Board is the job-board workflow: employer accounts post, employee
// accounts apply, everyone reads.
type Board struct {
	listing      postReader
	posts        postWriter
	applications applicationRepository
	bus          EventBus.Bus
}

func NewBoard(listing postReader, posts postWriter, applications applicationRepository, bus EventBus.Bus) *Board {
	return &Board{listing: listing, posts: posts, applications: applications, bus: bus}
}

// CreatePost persists a validated post for an employer account and
// announces it so cached listings drop.
func (b *Board) CreatePost(ctx context.Context, account *models.Account, post *models.JobPost) error {

	if account == nil || account.AccountType != models.Employer {
		return ErrNotEmployer
	}

	post.AuthorID = account.ID
	if err := b.posts.Add(ctx, post); err != nil {
		return err
	}

	metrics.JobPostsCreatedCounter.Inc()
	b.bus.Publish(events.JobPostCreatedTopic, events.JobPostCreated{PostID: post.ID, AuthorID: account.ID})
	return nil
}

// ListPosts returns the listing newest first. A failed read degrades to an
// empty listing: the page renders "no jobs" and the failure is only
// visible in the logs.
func (b *Board) ListPosts(ctx context.Context) []models.JobPost {

	posts, err := b.listing.Get(ctx)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to list job posts: %v", err)
		return nil
	}
	return posts
}

// AppliedPostIDs returns the set of posts the account already applied to,
// resolved in a single query. Nil for anonymous viewers.
func (b *Board) AppliedPostIDs(ctx context.Context, account *models.Account) map[uint]struct{} {

	if account == nil {
		return nil
	}

	applied, err := b.applications.AppliedPostIDs(ctx, account.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).Errorf("failed to load applications: %v", err)
		return nil
	}
	return applied
}

// CanApply is true iff the account is present, is an employee, and has no
// existing application for the post.
func (b *Board) CanApply(account *models.Account, postID uint, applied map[uint]struct{}) bool {

	if account == nil || account.AccountType != models.Employee {
		return false
	}
	_, alreadyApplied := applied[postID]
	return !alreadyApplied
}

// Apply re-checks eligibility and records the application. The existence
// check and the insert are separate round-trips; the unique index on
// (post, account) closes the race and reads as "already applied".
func (b *Board) Apply(ctx context.Context, account *models.Account, postID uint) (*models.Application, error) {

	if account == nil || account.AccountType != models.Employee {
		return nil, ErrNotEligible
	}

	post, err := b.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	exists, err := b.applications.Exists(ctx, postID, account.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	application, err := b.applications.Add(ctx, postID, account.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	metrics.ApplicationsCounter.Inc()
	return application, nil
}
