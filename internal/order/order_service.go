package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"go-laundry/internal/catalog"
	catalogerrors "go-laundry/internal/catalog/errors"
	ordererrors "go-laundry/internal/order/errors"
	"go-laundry/internal/role"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// maxOrderNumberAttempts bounds the collision-regenerate loop. The keyspace
// is 36^6 per day, so hitting the cap means the data is corrupted or the
// random source is broken; either way the create fails instead of spinning.
const maxOrderNumberAttempts = 100

// Options tunes lifecycle enforcement. StrictTransitions restricts staff
// status updates to the forward chain (plus pending->cancelled); the default
// keeps the historical behavior of allowing any jump between valid labels
// for operational correction.
type Options struct {
	StrictTransitions bool
}

type Service interface {
	Create(ctx context.Context, actor role.Actor, req CreateOrderRequest) (OrderResponse, error)
	Cancel(ctx context.Context, actor role.Actor, id string) (OrderResponse, error)
	UpdateStatus(ctx context.Context, actor role.Actor, id string, newStatus Status) (OrderResponse, error)
	List(ctx context.Context, actor role.Actor) ([]OrderResponse, error)
	GetByID(ctx context.Context, actor role.Actor, id string) (OrderResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	services catalog.Repository
	opts     Options
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, services catalog.Repository, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("order.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("order.service")
	}
	return &service{db: db, repo: repo, services: services, opts: opts, logger: l}
}

func (s *service) Create(ctx context.Context, actor role.Actor, req CreateOrderRequest) (OrderResponse, error) {
	s.logger.Debug("create order requested",
		zap.String("actor_id", actor.ID.String()),
		zap.String("service_id", req.ServiceID),
		zap.String("quantity", req.Quantity.String()),
	)

	if actor.IsStaff() {
		return OrderResponse{}, ordererrors.ErrStaffCannotOrder
	}
	if !req.Quantity.IsPositive() {
		return OrderResponse{}, ordererrors.ErrInvalidQuantity
	}
	if req.PickupAddress == "" {
		return OrderResponse{}, ordererrors.ErrPickupAddressRequired
	}
	if req.DeliveryAddress == "" {
		return OrderResponse{}, ordererrors.ErrDeliveryAddressRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create order begin tx failed", zap.Error(err))
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	svc, err := s.services.FindByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, catalogerrors.ErrServiceNotFound
		}
		return OrderResponse{}, err
	}

	orderNumber, err := s.uniqueOrderNumber(ctx, qtx)
	if err != nil {
		return OrderResponse{}, err
	}

	o := &Order{
		ID:              uuid.New(),
		OrderNumber:     orderNumber,
		Quantity:        req.Quantity,
		TotalPrice:      svc.Price.Mul(req.Quantity),
		Status:          StatusPending,
		Notes:           req.Notes,
		PickupAddress:   req.PickupAddress,
		DeliveryAddress: req.DeliveryAddress,
		UserID:          actor.ID,
		ServiceID:       svc.ID,
		Service:         svc,
	}

	if err := qtx.Create(ctx, o); err != nil {
		s.logger.Error("create order persist failed", zap.Error(err))
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create order commit failed", zap.Error(err))
		return OrderResponse{}, err
	}

	s.logger.Info("order created",
		zap.String("order_id", o.ID.String()),
		zap.String("order_number", o.OrderNumber),
		zap.String("total_price", o.TotalPrice.String()),
	)

	return mapToResponse(*o), nil
}

// uniqueOrderNumber regenerates on collision. Only existence checks run
// before the caller writes anything, so retries have no partial writes to
// undo.
func (s *service) uniqueOrderNumber(ctx context.Context, repo Repository) (string, error) {
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		candidate := NewOrderNumber(time.Now())

		exists, err := repo.OrderNumberExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}

		s.logger.Warn("order number collision, regenerating",
			zap.String("candidate", candidate),
			zap.Int("attempt", attempt+1),
		)
	}

	return "", ordererrors.ErrOrderNumberExhausted
}

func (s *service) Cancel(ctx context.Context, actor role.Actor, id string) (OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrInvalidOrderID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("cancel order begin tx failed", zap.Error(err))
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if actor.IsStaff() {
		return OrderResponse{}, ordererrors.ErrStaffCannotCancel
	}
	if o.UserID != actor.ID {
		return OrderResponse{}, ordererrors.ErrNotOrderOwner
	}
	if o.Status != StatusPending {
		return OrderResponse{}, ordererrors.ErrOrderNotCancellable
	}

	o.Status = StatusCancelled

	if err := qtx.Update(ctx, o); err != nil {
		s.logger.Error("cancel order persist failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("cancel order commit failed", zap.Error(err))
		return OrderResponse{}, err
	}

	s.logger.Info("order cancelled", zap.String("order_id", id))
	return mapToResponse(*o), nil
}

func (s *service) UpdateStatus(ctx context.Context, actor role.Actor, id string, newStatus Status) (OrderResponse, error) {
	if !actor.IsStaff() {
		return OrderResponse{}, ordererrors.ErrStaffOnly
	}
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrInvalidOrderID
	}
	if !newStatus.Valid() {
		return OrderResponse{}, ordererrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update order status begin tx failed", zap.Error(err))
		return OrderResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if s.opts.StrictTransitions && !isAllowedStatusTransition(o.Status, newStatus) {
		s.logger.Warn("order status transition rejected",
			zap.String("order_id", id),
			zap.String("from_status", string(o.Status)),
			zap.String("to_status", string(newStatus)),
		)
		return OrderResponse{}, ordererrors.ErrInvalidStatusTransition
	}

	o.Status = newStatus

	if err := qtx.Update(ctx, o); err != nil {
		s.logger.Error("update order status persist failed",
			zap.String("order_id", id),
			zap.Error(err),
		)
		return OrderResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update order status commit failed", zap.Error(err))
		return OrderResponse{}, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", id),
		zap.String("status", string(newStatus)),
	)

	return mapToResponse(*o), nil
}

func isAllowedStatusTransition(current, target Status) bool {
	switch current {
	case StatusPending:
		return target == StatusProcessing || target == StatusCancelled
	case StatusProcessing:
		return target == StatusReady
	case StatusReady:
		return target == StatusDelivered
	default:
		return false
	}
}

func (s *service) List(ctx context.Context, actor role.Actor) ([]OrderResponse, error) {
	var (
		orders []Order
		err    error
	)

	if actor.IsStaff() {
		orders, err = s.repo.FindAll(ctx)
	} else {
		orders, err = s.repo.FindAllByUser(ctx, actor.ID.String())
	}
	if err != nil {
		s.logger.Error("list orders failed", zap.Error(err))
		return nil, err
	}

	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = mapToResponse(o)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, actor role.Actor, id string) (OrderResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OrderResponse{}, ordererrors.ErrInvalidOrderID
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderResponse{}, ordererrors.ErrOrderNotFound
		}
		return OrderResponse{}, err
	}

	if !actor.IsStaff() && o.UserID != actor.ID {
		return OrderResponse{}, ordererrors.ErrNotOrderOwner
	}

	return mapToResponse(*o), nil
}

func mapToResponse(o Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID.String(),
		OrderNumber:     o.OrderNumber,
		ServiceID:       o.ServiceID.String(),
		UserID:          o.UserID.String(),
		Quantity:        o.Quantity,
		TotalPrice:      o.TotalPrice,
		Status:          string(o.Status),
		Notes:           o.Notes,
		PickupAddress:   o.PickupAddress,
		DeliveryAddress: o.DeliveryAddress,
		OrderDate:       o.OrderDate.Format(time.RFC3339),
	}
	if o.Service != nil {
		resp.ServiceName = o.Service.Name
	}
	if o.CompletedDate != nil {
		v := o.CompletedDate.Format(time.RFC3339)
		resp.CompletedDate = &v
	}
	return resp
}
