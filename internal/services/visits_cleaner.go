package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type VisitCleanupRepository interface {
	RemoveOldVisits(ctx context.Context, expirationTime time.Time) (int64, error)
}

// VisitsCleaner deletes page-view records past their retention window
// every night.
type VisitsCleaner struct {
	visits          VisitCleanupRepository
	cron            *cron.Cron
	retentionInDays int
}

func NewVisitsCleaner(visits VisitCleanupRepository, retentionInDays int) (*VisitsCleaner, error) {

	if retentionInDays <= 0 {
		return nil, errors.New("retention in days must be greater than zero")
	}

	vc := &VisitsCleaner{
		visits:          visits,
		cron:            cron.New(),
		retentionInDays: retentionInDays,
	}

	_, err := vc.cron.AddFunc("0 0 * * *", vc.cleanOldVisits)
	if err != nil {
		return nil, err
	}

	vc.cron.Start()
	log.Infof("visits cleaner started, retention in days: %d", vc.retentionInDays)
	return vc, nil
}

func (vc *VisitsCleaner) Stop() {
	vc.cron.Stop()
}

func (vc *VisitsCleaner) cleanOldVisits() {
	expirationTime := time.Now().Add(-time.Duration(vc.retentionInDays) * 24 * time.Hour)
	rowsAffected, err := vc.visits.RemoveOldVisits(context.Background(), expirationTime)
	if err != nil {
		log.Errorf("Failed to clean old visits: %v", err)
	} else {
		log.Infof("Old visits were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
