package catalog

import "context"

type Service interface {
	ListBouquets(ctx context.Context, opts ListOptions) ([]*Bouquet, error)
	GetBouquet(ctx context.Context, id int64) (*Bouquet, error)
	CreateBouquet(ctx context.Context, input NewBouquetInput) (*Bouquet, error)
	UpdateBouquet(ctx context.Context, id int64, input UpdateBouquetInput) (*Bouquet, error)

	ListFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error)
	GetFlower(ctx context.Context, id int64) (*Flower, error)
	CreateFlower(ctx context.Context, input NewFlowerInput) (*Flower, error)
	UpdateFlower(ctx context.Context, id int64, input UpdateFlowerInput) (*Flower, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListBouquets(ctx context.Context, opts ListOptions) ([]*Bouquet, error) {
	return s.repo.ListBouquets(ctx, opts)
}

func (s *service) GetBouquet(ctx context.Context, id int64) (*Bouquet, error) {
	return s.repo.GetBouquet(ctx, id)
}

func (s *service) CreateBouquet(ctx context.Context, input NewBouquetInput) (*Bouquet, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.CreateBouquet(ctx, input)
}

func (s *service) UpdateBouquet(ctx context.Context, id int64, input UpdateBouquetInput) (*Bouquet, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.UpdateBouquet(ctx, id, input)
}

func (s *service) ListFlowers(ctx context.Context, opts ListOptions) ([]*Flower, error) {
	return s.repo.ListFlowers(ctx, opts)
}

func (s *service) GetFlower(ctx context.Context, id int64) (*Flower, error) {
	return s.repo.GetFlower(ctx, id)
}

func (s *service) CreateFlower(ctx context.Context, input NewFlowerInput) (*Flower, error) {
	if input.Name == "" {
		return nil, ErrEmptyName
	}
	if input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.CreateFlower(ctx, input)
}

func (s *service) UpdateFlower(ctx context.Context, id int64, input UpdateFlowerInput) (*Flower, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, ErrInvalidPrice
	}
	return s.repo.UpdateFlower(ctx, id, input)
}
