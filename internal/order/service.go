package order

import (
	"context"
	"errors"
	"strconv"
	"time"

	"floreria-be/internal/logger"
	"floreria-be/internal/metrics"
	"floreria-be/internal/user"

	"go.uber.org/zap"
)

// Notifier receives order lifecycle events after commit, so dependents (the
// admin dashboard, order-history views) can refresh.
type Notifier interface {
	OrderCreated(o *Order)
	OrderStatusChanged(o *Order)
}

type Service interface {
	// Create places an order for the calling user. The returned id is a
	// decimal string; the numeric value may exceed what JSON clients handle.
	Create(ctx context.Context, req CreateOrderRequest) (string, error)
	ListMine(ctx context.Context) ([]*Order, error)
	List(ctx context.Context, opts ListOptions) ([]*Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error)
}

type service struct {
	repo     Repository
	users    user.Service
	notifier Notifier
	loc      *time.Location
	now      func() time.Time
}

func NewService(repo Repository, users user.Service, notifier Notifier, loc *time.Location) Service {
	return &service{
		repo:     repo,
		users:    users,
		notifier: notifier,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateOrderRequest) (string, error) {
	log := logger.FromCtx(ctx)

	u, err := s.users.CurrentUser(ctx)
	if errors.Is(err, user.ErrNotAuthenticated) {
		return "", E(KindNotAuthenticated, "you must be signed in to place an order")
	}
	if errors.Is(err, user.ErrUserNotFound) {
		return "", E(KindUserNotFound, "user account not found")
	}
	if err != nil {
		return "", err
	}

	if len(req.Items) == 0 {
		return "", E(KindTotalMismatch, "order has no items")
	}

	// Never trust the submitted total: recompute it from the lines.
	sum := 0
	for _, item := range req.Items {
		sum += item.UnitPrice * item.Quantity
	}
	if sum != req.Total {
		return "", E(KindTotalMismatch,
			"submitted total %d does not match item total %d", req.Total, sum)
	}

	now := s.now().In(s.loc)

	timer := metrics.StartTimer()
	o, err := s.repo.Create(ctx, u.ID, req, now)
	if err != nil {
		if KindOf(err) == KindInternal {
			metrics.Checkout.Failed.Inc()
			log.Error("order creation failed", zap.Error(err))
		} else {
			metrics.Checkout.Rejected.Inc()
		}
		return "", err
	}

	metrics.Checkout.Created.Inc()
	log.Info("order placed",
		zap.Int64("order_id", o.ID),
		zap.Duration("duration", timer.Duration()),
	)

	if s.notifier != nil {
		s.notifier.OrderCreated(o)
	}

	return strconv.FormatInt(o.ID, 10), nil
}

func (s *service) ListMine(ctx context.Context) ([]*Order, error) {
	u, err := s.users.CurrentUser(ctx)
	if errors.Is(err, user.ErrNotAuthenticated) {
		return nil, E(KindNotAuthenticated, "you must be signed in")
	}
	if err != nil {
		return nil, err
	}

	return s.repo.ListForUser(ctx, u.ID)
}

func (s *service) List(ctx context.Context, opts ListOptions) ([]*Order, error) {
	if opts.Status != nil && !opts.Status.Valid() {
		return nil, E(KindInvalidStatus, "unknown order status %q", *opts.Status)
	}
	return s.repo.List(ctx, opts)
}

func (s *service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	if !status.Valid() {
		return nil, E(KindInvalidStatus, "unknown order status %q", status)
	}

	o, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.OrderStatusChanged(o)
	}

	return o, nil
}
