package store

import (
	"context"

	"go.uber.org/zap"

	"reviewhub/internal/domain/reviews"
)

// Storage groups the client-side stores the views read from.
type Storage struct {
	Reviews interface {
		LoadReviews(context.Context)
		AddReview(context.Context, string) (reviews.Review, error)
		Snapshot() Snapshot
		Subscribe(func(Snapshot)) error
	}
}

func NewStorage(service reviews.Service, logger *zap.SugaredLogger, opts ...Option) Storage {
	return Storage{
		Reviews: NewReviewStore(service, logger, opts...),
	}
}
