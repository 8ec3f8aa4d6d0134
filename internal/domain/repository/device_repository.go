// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"quicksell/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindOrCreateByFCMID returns the device registered under the FCM token, inserting an
	// active, ownerless device first when absent. The boolean reports whether a row was created.
	FindOrCreateByFCMID(ctx context.Context, fcmID string) (*entity.Device, bool, error)

	// FindActiveByOwner retrieves all active devices bound to an account.
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// Update persists owner, activity and failure counter of a device.
	Update(ctx context.Context, device *entity.Device) error
}
