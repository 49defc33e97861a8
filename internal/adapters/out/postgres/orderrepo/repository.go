package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
	"driverops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly accepted order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: order %s already exists", ports.ErrConflict, aggregate.ID())
		}
		return classifyError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. The update is guarded
// against terminal drift: if the stored row reached a terminal state since
// the aggregate was loaded, the write is refused with ErrAlreadyCompleted
// (Delivered) or ErrConflict (Cancelled, Failed).
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status NOT IN (?, ?, ?)",
			dto.ID,
			order.Delivered.String(), order.Cancelled.String(), order.Failed.String()).
		Updates(map[string]any{
			"status":       dto.Status,
			"delivered_at": dto.DeliveredAt,
		})
	if result.Error != nil {
		return classifyError(result.Error)
	}

	if result.RowsAffected == 0 {
		return r.classifyRefusedUpdate(ctx, aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// classifyRefusedUpdate inspects the stored row to explain a guarded update
// that matched nothing.
func (r *GormOrderRepository) classifyRefusedUpdate(ctx context.Context, id kernel.UUID) error {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		return classifyError(err)
	}

	if dto.Status == order.Delivered.String() {
		return fmt.Errorf("%w: order %s is already delivered", ports.ErrAlreadyCompleted, id)
	}

	return fmt.Errorf("%w: order %s is in terminal status %s", ports.ErrConflict, id, dto.Status)
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, classifyError(err)
	}

	return toDomain(dto)
}

// classifyError wraps driver-level connectivity failures into
// ports.ErrNetwork so callers can tell a transient failure, which is safe to
// retry, apart from a persistence conflict. Other errors pass through.
func classifyError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ports.ErrNetwork, err)
	}
	return err
}
