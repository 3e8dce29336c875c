package reviews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

const resourcePath = "/reviews/"

// Service translates review operations into calls on the reviews resource.
type Service interface {
	GetReviews(ctx context.Context) ([]Review, error)
	CreateReview(ctx context.Context, content string) (Review, error)
}

// Requester is the subset of the api client the service needs.
type Requester interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
}

type HTTPService struct {
	api Requester
}

func NewService(api Requester) Service {
	return &HTTPService{api: api}
}

// GetReviews returns the reviews in server order. Errors are returned as is.
func (s *HTTPService) GetReviews(ctx context.Context) ([]Review, error) {
	var body json.RawMessage
	if err := s.api.Get(ctx, resourcePath, &body); err != nil {
		return nil, err
	}

	var list []Review
	if err := unwrap(body, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// CreateReview posts content and returns the stored review. It is not
// idempotent: calling it twice creates two reviews.
func (s *HTTPService) CreateReview(ctx context.Context, content string) (Review, error) {
	var body json.RawMessage
	payload := CreateReviewPayload{Content: content}
	if err := s.api.Post(ctx, resourcePath, payload, &body); err != nil {
		return Review{}, err
	}

	var created Review
	if err := unwrap(body, &created); err != nil {
		return Review{}, err
	}
	return created, nil
}

// unwrap decodes either a {"data": ...} envelope or the bare value into out.
// An object without a "data" key is taken as the bare value.
func unwrap(body json.RawMessage, out any) error {
	value := bytes.TrimLeft(body, " \t\r\n")
	if len(value) > 0 && value[0] == '{' {
		var envelope struct {
			Data json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(value, &envelope); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		if envelope.Data != nil {
			value = envelope.Data
		}
	}

	if err := json.Unmarshal(value, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
