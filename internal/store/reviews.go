package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	evbus "github.com/asaskevich/EventBus"
	"go.uber.org/zap"

	"reviewhub/internal/domain/reviews"
	"reviewhub/internal/metrics"
)

// TopicReviewsChanged is published with a Snapshot after every state change.
const TopicReviewsChanged = "reviews:changed"

// Snapshot is a copy of the store state at one point in time.
type Snapshot struct {
	Reviews   []reviews.Review `json:"reviews"`
	Loading   bool             `json:"loading"`
	LastError string           `json:"last_error,omitempty"`
	LoadedAt  time.Time        `json:"loaded_at"`
}

// ReviewStore caches the review list for the lifetime of the process.
//
// The list only changes through LoadReviews and AddReview. Every load and
// every add takes a new generation; a load response is applied only when its
// generation is still the latest, so a slow response never overwrites the
// result of a newer load or a review added meanwhile.
type ReviewStore struct {
	service reviews.Service
	logger  *zap.SugaredLogger
	bus     evbus.Bus

	mu         sync.Mutex
	reviews    []reviews.Review
	inflight   int
	generation uint64
	lastErr    error
	loadedAt   time.Time
}

type Option func(*ReviewStore)

// WithBus publishes change events on bus instead of a private one.
func WithBus(bus evbus.Bus) Option {
	return func(s *ReviewStore) {
		s.bus = bus
	}
}

func NewReviewStore(service reviews.Service, logger *zap.SugaredLogger, opts ...Option) *ReviewStore {
	s := &ReviewStore{
		service: service,
		logger:  logger,
		bus:     evbus.New(),
		reviews: make([]reviews.Review, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadReviews replaces the cached list with the server's. Failures are logged
// and recorded in the snapshot; the cached list is left as it was.
func (s *ReviewStore) LoadReviews(ctx context.Context) {
	s.mu.Lock()
	s.inflight++
	s.generation++
	gen := s.generation
	s.mu.Unlock()
	s.publish()

	start := time.Now()
	list, err := s.service.GetReviews(ctx)

	s.mu.Lock()
	s.inflight--
	stale := gen != s.generation
	if !stale {
		if err != nil {
			s.lastErr = err
		} else {
			if list == nil {
				list = make([]reviews.Review, 0)
			}
			s.reviews = list
			s.lastErr = nil
			s.loadedAt = time.Now()
		}
	}
	s.mu.Unlock()

	switch {
	case err != nil:
		s.logger.Errorw("failed to load reviews", "error", err.Error(), "stale", stale)
		metrics.ObserveStoreLoad(metrics.OutcomeFailure, time.Since(start))
	case stale:
		s.logger.Debugw("discarded stale review list", "count", len(list), "generation", gen)
		metrics.ObserveStoreLoad(metrics.OutcomeStale, time.Since(start))
	default:
		s.logger.Infow("loaded reviews", "count", len(list))
		metrics.ObserveStoreLoad(metrics.OutcomeSuccess, time.Since(start))
	}

	s.publish()
}

// AddReview creates a review and puts it at the front of the list. Errors
// from the service are returned unchanged and leave the list untouched.
func (s *ReviewStore) AddReview(ctx context.Context, content string) (reviews.Review, error) {
	created, err := s.service.CreateReview(ctx, content)
	if err != nil {
		return reviews.Review{}, err
	}

	s.mu.Lock()
	s.generation++
	next := make([]reviews.Review, 0, len(s.reviews)+1)
	next = append(next, created)
	s.reviews = append(next, s.reviews...)
	s.mu.Unlock()

	s.publish()
	return created, nil
}

func (s *ReviewStore) Reviews() []reviews.Review {
	return s.Snapshot().Reviews
}

func (s *ReviewStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight > 0
}

func (s *ReviewStore) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]reviews.Review, len(s.reviews))
	copy(list, s.reviews)

	snap := Snapshot{
		Reviews:  list,
		Loading:  s.inflight > 0,
		LoadedAt: s.loadedAt,
	}
	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}
	return snap
}

// Subscribe registers fn to be called synchronously with every new snapshot.
func (s *ReviewStore) Subscribe(fn func(Snapshot)) error {
	if err := s.bus.Subscribe(TopicReviewsChanged, fn); err != nil {
		return fmt.Errorf("subscribe %s: %w", TopicReviewsChanged, err)
	}
	return nil
}

// publish must be called without s.mu held: subscribers may read the store.
func (s *ReviewStore) publish() {
	s.bus.Publish(TopicReviewsChanged, s.Snapshot())
}
