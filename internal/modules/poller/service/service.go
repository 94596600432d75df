package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	cursorRepo "github.com/avelichko/rss-channel-bot/internal/modules/cursor/repository"
	feedDomain "github.com/avelichko/rss-channel-bot/internal/modules/feed/domain"
	feedService "github.com/avelichko/rss-channel-bot/internal/modules/feed/service"
	messageDomain "github.com/avelichko/rss-channel-bot/internal/modules/message/domain"
	messageService "github.com/avelichko/rss-channel-bot/internal/modules/message/service"
	"github.com/avelichko/rss-channel-bot/internal/shared/config"
	"github.com/mmcdole/gofeed"
)

// recoveryInterval is how long the loop backs off after a recovered panic
// before resuming the normal schedule.
const recoveryInterval = 60 * time.Second

// Fetcher supplies feed entries in feed order (newest first).
type Fetcher interface {
	Fetch(ctx context.Context) ([]*gofeed.Item, error)
}

// Sender delivers a rendered entry to the downstream channel.
type Sender interface {
	Deliver(ctx context.Context, entry *feedDomain.Entry, rendered messageDomain.Rendered) messageDomain.DeliveryOutcome
}

// Status is a snapshot of the poller's most recent cycle.
type Status struct {
	LastCycleAt    time.Time `json:"last_cycle_at"`
	LastDelivered  int       `json:"last_delivered"`
	TotalDelivered int       `json:"total_delivered"`
	LastError      string    `json:"last_error,omitempty"`
}

// Service runs the fetch-walk-deliver cycle on a fixed schedule
type Service struct {
	cfg        *config.Config
	cursorRepo cursorRepo.Repository
	fetcher    Fetcher
	normalizer *feedService.Normalizer
	renderer   *messageService.Renderer
	sender     Sender

	status   Status
	statusMu sync.RWMutex

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new poller service
func New(cfg *config.Config, cursorRepo cursorRepo.Repository, fetcher Fetcher, normalizer *feedService.Normalizer, renderer *messageService.Renderer, sender Sender) *Service {
	ctx, cancel := context.WithCancel(context.Background())
	return &Service{
		cfg:        cfg,
		cursorRepo: cursorRepo,
		fetcher:    fetcher,
		normalizer: normalizer,
		renderer:   renderer,
		sender:     sender,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins the polling loop
func (s *Service) Start(ctx context.Context) {
	s.wg.Add(1)
	go s.loop()
}

// Stop terminates the polling loop and waits for the current cycle
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

// Status returns a snapshot of the most recent cycle.
func (s *Service) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}

func (s *Service) loop() {
	defer s.wg.Done()

	for {
		interval := time.Duration(s.cfg.CheckInterval) * time.Second
		if recovered := s.runOnce(); recovered {
			interval = recoveryInterval
		}

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

// runOnce executes a single cycle, containing panics so that one broken cycle
// never kills the process. It reports whether the loop should back off before
// the next cycle.
func (s *Service) runOnce() (recovered bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Cycle panicked, recovering", "panic", r)
			s.recordCycle(0, fmt.Sprintf("panic: %v", r))
			recovered = true
		}
	}()

	count, err := s.RunCycle(s.ctx)
	if err != nil {
		slog.Error("Cycle failed", "error", err)
		s.recordCycle(count, err.Error())
		return false
	}

	if count > 0 {
		slog.Info("Cycle finished", "delivered", count)
	} else {
		slog.Info("Nothing new")
	}
	s.recordCycle(count, "")
	return false
}

// RunCycle performs one fetch-walk-deliver pass and returns the number of
// entries delivered. Entries are walked in feed order and the walk stops at
// the first entry matching the persisted cursor; everything from there on was
// already delivered.
func (s *Service) RunCycle(ctx context.Context) (int, error) {
	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	lastID, err := s.cursorRepo.Load()
	if err != nil {
		slog.Error("Failed to load cursor, treating as absent", "error", err)
		lastID = ""
	}

	delivered := 0
	cursorAdvanced := false
	for _, item := range items {
		if lastID != "" && feedService.EntryID(item) == lastID {
			break
		}

		entry := s.normalizer.Normalize(item)
		rendered := s.renderer.Render(entry)

		if s.sender.Deliver(ctx, entry, rendered) != messageDomain.DeliveryOutcomeSent {
			// No cursor advance and no cooldown for a failed entry; the
			// remaining entries still get their chance this cycle.
			continue
		}

		// The walk runs newest-first, so the first successful delivery is the
		// newest entry of the cycle. Later saves would move the watermark
		// backwards and cause duplicates on the next cycle. A failed save
		// leaves the next success to retry the write, so at worst one entry
		// is reposted after a restart.
		if !cursorAdvanced {
			if err := s.cursorRepo.Save(entry.ID); err != nil {
				slog.Error("Failed to persist cursor, restart may repost this entry", "entry_id", entry.ID, "error", err)
			} else {
				cursorAdvanced = true
			}
		}
		delivered++

		// Pace consecutive posts to respect the channel's rate limits.
		select {
		case <-ctx.Done():
			return delivered, nil
		case <-time.After(time.Duration(s.cfg.PostCooldown) * time.Second):
		}
	}

	return delivered, nil
}

func (s *Service) recordCycle(delivered int, errMsg string) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	s.status.LastCycleAt = time.Now()
	s.status.LastDelivered = delivered
	s.status.TotalDelivered += delivered
	s.status.LastError = errMsg
}
