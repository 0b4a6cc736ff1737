package store

import "context"

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, params UpdateParams) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, params UpdateParams) (*Settings, error) {
	if params.OpensAt != nil {
		if _, err := ParseClock(*params.OpensAt); err != nil {
			return nil, ErrInvalidClock
		}
	}
	if params.ClosesAt != nil {
		if _, err := ParseClock(*params.ClosesAt); err != nil {
			return nil, ErrInvalidClock
		}
	}
	if params.OpensAt != nil && params.ClosesAt != nil {
		open, _ := ParseClock(*params.OpensAt)
		closeM, _ := ParseClock(*params.ClosesAt)
		if open >= closeM {
			return nil, ErrInvalidWindow
		}
	}
	if params.PrepMinutes != nil && *params.PrepMinutes <= 0 {
		return nil, ErrInvalidBuffer
	}

	return s.repo.Update(ctx, params)
}
