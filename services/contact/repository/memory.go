package repository

import (
	"context"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yasararafath/portfolio-backend/internal/pkg/logger"
	"github.com/yasararafath/portfolio-backend/internal/pkg/models"
	"github.com/yasararafath/portfolio-backend/services/contact"
)

const shardCount = 32

type challengeShard struct {
	mu      sync.Mutex
	entries map[string]models.Challenge
}

// MemoryChallengeRepo is the default in-process challenge store: a
// lock-striped map with a capacity bound and a background sweeper for
// expired entries. State does not survive a restart.
type MemoryChallengeRepo struct {
	shards        [shardCount]*challengeShard
	count         int64
	maxEntries    int
	sweepInterval time.Duration
	stop          chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup
}

// NewMemoryChallengeRepo creates a memory-backed challenge store
func NewMemoryChallengeRepo(cfg models.ChallengeConfig) *MemoryChallengeRepo {
	r := &MemoryChallengeRepo{
		maxEntries:    cfg.MaxEntries,
		sweepInterval: time.Duration(cfg.SweepInterval) * time.Second,
		stop:          make(chan struct{}),
	}
	for i := range r.shards {
		r.shards[i] = &challengeShard{entries: make(map[string]models.Challenge)}
	}
	return r
}

func (r *MemoryChallengeRepo) shard(email string) *challengeShard {
	h := fnv.New32a()
	h.Write([]byte(email))
	return r.shards[h.Sum32()%shardCount]
}

// Store saves a challenge, replacing any existing record for the email
func (r *MemoryChallengeRepo) Store(_ context.Context, challenge *models.Challenge) error {
	s := r.shard(challenge.Email)
	s.mu.Lock()
	_, exists := s.entries[challenge.Email]
	if !exists && r.maxEntries > 0 && atomic.LoadInt64(&r.count) >= int64(r.maxEntries) {
		s.mu.Unlock()
		// Reclaim expired entries before giving up
		r.sweep(time.Now())
		s.mu.Lock()
		_, exists = s.entries[challenge.Email]
		if !exists && atomic.LoadInt64(&r.count) >= int64(r.maxEntries) {
			s.mu.Unlock()
			return contact.ErrStoreFull
		}
	}
	if !exists {
		atomic.AddInt64(&r.count, 1)
	}
	s.entries[challenge.Email] = *challenge
	s.mu.Unlock()
	return nil
}

// Get returns the live challenge for the email, or nil when absent
func (r *MemoryChallengeRepo) Get(_ context.Context, email string) (*models.Challenge, error) {
	s := r.shard(email)
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.entries[email]
	if !ok {
		return nil, nil
	}
	return &ch, nil
}

// IncrementAttempts bumps the failure counter and returns the new value
func (r *MemoryChallengeRepo) IncrementAttempts(_ context.Context, email string) (int, error) {
	s := r.shard(email)
	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.entries[email]
	if !ok {
		return 0, contact.ErrNoChallenge
	}
	ch.Attempts++
	s.entries[email] = ch
	return ch.Attempts, nil
}

// Delete removes the challenge for the email, if any
func (r *MemoryChallengeRepo) Delete(_ context.Context, email string) error {
	s := r.shard(email)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[email]; ok {
		delete(s.entries, email)
		atomic.AddInt64(&r.count, -1)
	}
	return nil
}

// Len returns the number of live entries
func (r *MemoryChallengeRepo) Len() int {
	return int(atomic.LoadInt64(&r.count))
}

// StartSweeper launches the background sweep of expired entries
func (r *MemoryChallengeRepo) StartSweeper() {
	if r.sweepInterval <= 0 {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				removed := r.sweep(now)
				if removed > 0 {
					logger.Debug("Swept expired challenges", logger.Int("removed", removed))
				}
			case <-r.stop:
				return
			}
		}
	}()
}

// sweep deletes expired entries across all shards and reports how many
func (r *MemoryChallengeRepo) sweep(now time.Time) int {
	removed := 0
	for _, s := range r.shards {
		s.mu.Lock()
		for email, ch := range s.entries {
			if ch.Expired(now) {
				delete(s.entries, email)
				removed++
			}
		}
		s.mu.Unlock()
	}
	if removed > 0 {
		atomic.AddInt64(&r.count, -int64(removed))
	}
	return removed
}

// Close stops the sweeper and drains the store
func (r *MemoryChallengeRepo) Close(_ context.Context) error {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.wg.Wait()
	for _, s := range r.shards {
		s.mu.Lock()
		s.entries = make(map[string]models.Challenge)
		s.mu.Unlock()
	}
	atomic.StoreInt64(&r.count, 0)
	return nil
}
