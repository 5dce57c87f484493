package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/skala-ium/events/pkg/logger"
)

type JobFunc func(ctx context.Context) error

// Scheduler runs periodic jobs. A run that overlaps the previous one of the
// same job is skipped.
type Scheduler struct {
	cron    *cron.Cron
	log     *logger.Logger
	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		log:  log,
		ctx:  context.Background(),
	}
}

// Add registers job under a cron spec such as "@every 1m" or "*/5 * * * *".
func (s *Scheduler) Add(name, spec string, job JobFunc) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runJob(name, job)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for job %s: %w", spec, name, err)
	}
	return nil
}

func (s *Scheduler) runJob(name string, job JobFunc) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	start := time.Now()
	if err := job(ctx); err != nil {
		s.log.Error(ctx, "Scheduled job failed", zap.String("job", name), zap.Error(err))
		return
	}
	s.log.Debug(ctx, "Scheduled job completed",
		zap.String("job", name),
		zap.Duration("duration", time.Since(start)),
	)
}

// Start launches the scheduler. Jobs receive a context derived from ctx that
// is cancelled by Stop.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn(ctx, "Scheduler is already running")
		return
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.running = true

	for _, entry := range s.cron.Entries() {
		s.log.Info(ctx, "Job scheduled", zap.Time("next_run", entry.Next))
	}
}

// Stop cancels running jobs and waits for them to return.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	<-s.cron.Stop().Done()
	s.log.Info(context.Background(), "Scheduler stopped")
}
