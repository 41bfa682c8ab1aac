package remind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/codetrack/codetrack/internal/tracker"
)

// Scheduler runs the digest once a day.
type Scheduler struct {
	cron      *gocron.Scheduler
	job       *gocron.Job
	tracker   *tracker.Tracker
	notifiers []Notifier
	logger    *log.Logger
}

// ParseClock validates an "HH:MM" time of day.
func ParseClock(at string) (time.Time, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time %q (want HH:MM)", at)
	}
	return t, nil
}

// NewScheduler schedules a daily digest at the given "HH:MM" local time.
func NewScheduler(t *tracker.Tracker, at string, logger *log.Logger, notifiers ...Notifier) (*Scheduler, error) {
	if _, err := ParseClock(at); err != nil {
		return nil, err
	}
	if len(notifiers) == 0 {
		return nil, errors.New("no notifiers configured")
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Scheduler{
		cron:      gocron.NewScheduler(time.Local),
		tracker:   t,
		notifiers: notifiers,
		logger:    logger,
	}
	job, err := s.cron.Every(1).Day().At(at).Do(s.run)
	if err != nil {
		return nil, fmt.Errorf("schedule digest: %w", err)
	}
	s.job = job
	return s, nil
}

// Start runs the scheduler in the background.
func (s *Scheduler) Start() {
	s.cron.StartAsync()
}

// Stop halts the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// NextRun returns when the digest will next be sent.
func (s *Scheduler) NextRun() time.Time {
	return s.job.NextRun()
}

// RunOnce sends the digest now, even when nothing is due.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	return Send(ctx, BuildDigest(s.tracker), s.notifiers...)
}

// run is the scheduled job. Days with nothing due are skipped.
func (s *Scheduler) run() {
	d := BuildDigest(s.tracker)
	if d.Total() == 0 {
		s.logger.Printf("no reviews due on %s, skipping digest", d.Date)
		return
	}
	if err := Send(context.Background(), d, s.notifiers...); err != nil {
		s.logger.Printf("warning: %v", err)
	}
}

// Send delivers d through every notifier, returning the joined errors.
func Send(ctx context.Context, d Digest, notifiers ...Notifier) error {
	var errs []error
	for _, n := range notifiers {
		if err := n.Notify(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
