// Package cron keeps the Redis snapshot warm by refreshing it on a schedule.
package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/internal/social"
)

type Scheduler struct {
	svc  *social.Service
	spec string
	log  *zap.Logger

	c *cron.Cron
}

func NewScheduler(svc *social.Service, spec string, log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{svc: svc, spec: spec, log: log}
}

// Start registers the refresh job and begins the schedule. Spec accepts the
// standard 5-field cron syntax plus descriptors such as "@every 10m".
func (s *Scheduler) Start() error {
	s.c = cron.New()

	_, err := s.c.AddFunc(s.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.svc.RefreshSnapshot(ctx); err != nil {
			s.log.Warn("scheduled snapshot refresh failed", zap.Error(err))
			return
		}
		s.log.Debug("snapshot refreshed")
	})
	if err != nil {
		return err
	}

	s.c.Start()
	s.log.Info("snapshot refresh scheduled", zap.String("spec", s.spec))
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.c == nil {
		return
	}
	<-s.c.Stop().Done()
}
