// Package cleanup runs the scheduled sweep that retires expired invitations.
package cleanup

import (
	"context"
	"time"

	"invitehub/internal/invitation"
	"invitehub/pkg/logger"

	"github.com/robfig/cron/v3"
)

// sweepTimeout bounds one sweep run.
const sweepTimeout = 30 * time.Second

// Sweeper periodically removes expired invitations from the registry.
type Sweeper struct {
	store    *invitation.Store
	schedule string
	cron     *cron.Cron
}

// NewSweeper creates a sweeper on the given cron schedule ("@hourly",
// "*/10 * * * *", ...).
func NewSweeper(store *invitation.Store, schedule string) *Sweeper {
	return &Sweeper{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start registers the sweep job and starts the scheduler.
func (s *Sweeper) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.WithField("schedule", s.schedule).Info("Invitation expiry sweeper started")
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := s.store.RemoveExpired(ctx)
	if err != nil {
		logger.Log.WithField("error", err.Error()).Error("Invitation expiry sweep failed")
		return
	}
	if removed > 0 {
		logger.Log.WithField("removed", removed).Info("Expired invitations removed")
	}
}
