package repositories

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/events"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const listingCacheKey = "listing"

type postsRepository interface {
	Get(ctx context.Context) ([]models.JobPost, error)
}

// CachedPosts keeps the full listing in memory so every visitor does not
// hit the store. The cache drops on every created post, so a fresh listing
// always shows the new post first.
type CachedPosts struct {
	repo  postsRepository
	cache *gocache.Cache
}

func NewCachedPosts(repo postsRepository, bus EventBus.Bus) (*CachedPosts, error) {
	c := &CachedPosts{repo: repo, cache: gocache.New(time.Minute, 5*time.Minute)}

	if err := bus.Subscribe(events.JobPostCreatedTopic, c.onPostCreated); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *CachedPosts) Get(ctx context.Context) ([]models.JobPost, error) {
	if value, found := c.cache.Get(listingCacheKey); found {
		return value.([]models.JobPost), nil
	}

	posts, err := c.repo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.Add(listingCacheKey, posts, gocache.DefaultExpiration); cacheErr != nil {
		log.Errorf("failed to cache job post listing: %v", cacheErr)
	}
	return posts, nil
}

func (c *CachedPosts) onPostCreated(event events.JobPostCreated) {
	c.cache.Delete(listingCacheKey)
	log.Debugf("listing cache invalidated by post %d", event.PostID)
}
