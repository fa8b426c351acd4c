// Package scheduler runs the background sweeps on cron schedules: the
// promotion sweep that flips overdue limited jobs to Normal, and the
// weekly-frequency sweep that downgrades jobs whose active dates fell below
// their commitment.
package scheduler

import (
	"context"
	"log"

	"care-shift-api/config"
	"care-shift-api/internal/services"

	"github.com/robfig/cron/v3"
)

// Sweeper owns the cron runner. Each sweep is idempotent, so overlapping or
// missed runs are harmless.
type Sweeper struct {
	cron *cron.Cron
	jobs services.JobService
}

// NewSweeper registers the two sweeps against their configured specs.
func NewSweeper(cfg config.SchedulerConfig, jobs services.JobService) (*Sweeper, error) {
	s := &Sweeper{
		cron: cron.New(),
		jobs: jobs,
	}

	if _, err := s.cron.AddFunc(cfg.PromotionSpec, s.runPromotionSweep); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(cfg.WeeklyFrequencySpec, s.runWeeklyFrequencySweep); err != nil {
		return nil, err
	}
	return s, nil
}

// Start launches the cron runner in its own goroutine.
func (s *Sweeper) Start() {
	s.cron.Start()
	log.Println("Background sweeps scheduled")
}

// Stop halts the runner and waits for any running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Background sweeps stopped")
}

func (s *Sweeper) runPromotionSweep() {
	promoted, err := s.jobs.SweepPromotions(context.Background())
	if err != nil {
		log.Printf("Promotion sweep failed: %v", err)
		return
	}
	if promoted > 0 {
		log.Printf("Promotion sweep: %d jobs promoted to Normal", promoted)
	}
}

func (s *Sweeper) runWeeklyFrequencySweep() {
	downgraded, err := s.jobs.SweepWeeklyFrequency(context.Background())
	if err != nil {
		log.Printf("Weekly frequency sweep failed: %v", err)
		return
	}
	if downgraded > 0 {
		log.Printf("Weekly frequency sweep: %d jobs downgraded", downgraded)
	}
}
