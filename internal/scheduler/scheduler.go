package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

type Rotator interface {
	RotateCatalog(ctx context.Context) error
}

// Scheduler drives periodic shop rotation. It is either idle or rotating;
// a tick that arrives while a rotation is still running is skipped rather
// than queued, so rotations never overlap.
type Scheduler struct {
	rotator  Rotator
	cron     *cron.Cron
	rotating atomic.Bool
}

func New(rotator Rotator) *Scheduler {
	return &Scheduler{rotator: rotator}
}

// Start schedules Run every interval. The first rotation happens one full
// interval after startup; callers that need an immediate rotation (e.g. an
// empty catalog on first boot) invoke Run themselves.
func (s *Scheduler) Start(interval time.Duration) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", interval), s.Run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Run executes one rotation. A failure is logged and swallowed; nothing is
// waiting on the result and the next tick retries naturally. The timer is
// not reset on failure, avoiding rotation storms when storage is down.
func (s *Scheduler) Run() {
	if !s.rotating.CompareAndSwap(false, true) {
		log.Println("shop rotation still running, skipping tick")
		return
	}
	defer s.rotating.Store(false)
	if err := s.rotator.RotateCatalog(context.Background()); err != nil {
		log.Printf("shop rotation failed: %v", err)
		return
	}
	log.Println("shop rotated")
}
