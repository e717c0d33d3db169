package services

import (
	"context"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/kmureithi/devfolio/internal/clients/directory"
	"github.com/kmureithi/devfolio/internal/domain/models"
	"github.com/kmureithi/devfolio/internal/events"
	"github.com/kmureithi/devfolio/internal/logger"
	"github.com/kmureithi/devfolio/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

type sessionDirectory interface {
	GetUser(ctx context.Context, accessToken string) (*directory.User, error)
	SignOut(ctx context.Context, accessToken string) error
}

type accountReader interface {
	GetByDirectoryID(ctx context.Context, directoryUserID string) (*models.Account, error)
}

// SessionStore is the process-wide session state: it is built once at app
// start, updated on every auth event, and torn down on shutdown. Consumers
// get it injected; nothing reads ambient globals.
type SessionStore struct {
	directory sessionDirectory
	accounts  accountReader
	cache     *gocache.Cache
	bus       EventBus.Bus
}

func NewSessionStore(directory sessionDirectory, accounts accountReader, bus EventBus.Bus) *SessionStore {
	return &SessionStore{
		directory: directory,
		accounts:  accounts,
		cache:     gocache.New(10*time.Minute, 20*time.Minute),
		bus:       bus,
	}
}

// Resolve maps an access token to the local account, or nil when the token
// is invalid, expired, or has no profile row yet.
func (s *SessionStore) Resolve(ctx context.Context, accessToken string) *models.Account {

	if accessToken == "" {
		return nil
	}

	if cached, found := s.cache.Get(accessToken); found {
		return cached.(*models.Account)
	}

	user, err := s.directory.GetUser(ctx, accessToken)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDirectory).
			Debugf("failed to resolve session: %v", err)
		return nil
	}

	account, err := s.accounts.GetByDirectoryID(ctx, user.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to load account for session: %v", err)
		return nil
	}
	if account == nil {
		return nil
	}

	s.cache.Set(accessToken, account, gocache.DefaultExpiration)
	return account
}

// Remember records a fresh sign-in and publishes the auth event.
func (s *SessionStore) Remember(session *directory.Session, account *models.Account) {

	ttl := gocache.DefaultExpiration
	if session.ExpiresIn > 0 {
		ttl = time.Duration(session.ExpiresIn) * time.Second
	}
	s.cache.Set(session.AccessToken, account, ttl)

	metrics.SignInsCounter.Inc()
	s.bus.Publish(events.SignedInTopic, events.SignedIn{
		AccountID:   account.ID,
		AccountType: string(account.AccountType),
	})
}

// Forget revokes the session with the directory and drops the local entry.
func (s *SessionStore) Forget(ctx context.Context, accessToken string) {

	account := s.Resolve(ctx, accessToken)

	if err := s.directory.SignOut(ctx, accessToken); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDirectory).
			Errorf("failed to sign out of directory: %v", err)
	}
	s.cache.Delete(accessToken)

	if account != nil {
		s.bus.Publish(events.SignedOutTopic, events.SignedOut{AccountID: account.ID})
	}
}

func (s *SessionStore) Teardown() {
	s.cache.Flush()
}
