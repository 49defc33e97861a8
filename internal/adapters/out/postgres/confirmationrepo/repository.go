package confirmationrepo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/ports"
	"driverops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConfirmationRepository implements ConfirmationRepository using GORM.
type GormConfirmationRepository struct {
	db *gorm.DB
}

// NewGormConfirmationRepository creates a new GORM confirmation repository.
func NewGormConfirmationRepository(db *gorm.DB) *GormConfirmationRepository {
	return &GormConfirmationRepository{db: db}
}

// AddPickup persists a pickup confirmation. A second confirmation for the
// same order returns ErrConflict.
func (r *GormConfirmationRepository) AddPickup(ctx context.Context, confirmation order.PickupConfirmation) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&PickupConfirmationDTO{}).
		Where("order_id = ?", confirmation.OrderID().Bytes()).
		Count(&count).Error
	if err != nil {
		return classifyError(err)
	}
	if count > 0 {
		return fmt.Errorf("%w: pickup confirmation already exists for order %s",
			ports.ErrConflict, confirmation.OrderID())
	}

	dto := pickupFromDomain(confirmation)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: pickup confirmation already exists for order %s",
				ports.ErrConflict, confirmation.OrderID())
		}
		return classifyError(err)
	}

	return nil
}

// AddDelivery persists a delivery confirmation. The proof gate is re-checked
// here as defense in depth; a second confirmation for the same order returns
// ErrAlreadyCompleted.
func (r *GormConfirmationRepository) AddDelivery(ctx context.Context, confirmation order.DeliveryConfirmation) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}
	if !confirmation.CanSubmit() {
		return errs.NewValueIsRequiredError("delivery confirmation photo and location")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&DeliveryConfirmationDTO{}).
		Where("order_id = ?", confirmation.OrderID().Bytes()).
		Count(&count).Error
	if err != nil {
		return classifyError(err)
	}
	if count > 0 {
		return fmt.Errorf("%w: delivery confirmation already exists for order %s",
			ports.ErrAlreadyCompleted, confirmation.OrderID())
	}

	dto := deliveryFromDomain(confirmation)
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: delivery confirmation already exists for order %s",
				ports.ErrAlreadyCompleted, confirmation.OrderID())
		}
		return classifyError(err)
	}

	return nil
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
