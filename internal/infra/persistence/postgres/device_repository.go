// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"quicksell/internal/domain/entity"
	domainerrors "quicksell/internal/domain/errors"
	"quicksell/internal/domain/repository"
	"quicksell/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// FindOrCreateByFCMID inserts an active, ownerless device for the token unless one is
// already registered, and returns the stored row.
func (repo *deviceRepository) FindOrCreateByFCMID(ctx context.Context, fcmID string) (*entity.Device, bool, error) {
	deviceM := &model.DeviceModel{
		FCMID:    fcmID,
		IsActive: true,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "fcm_id"}},
			DoNothing: true,
		}).
		Create(deviceM)
	if result.Error != nil {
		return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create device")
	}

	if result.RowsAffected > 0 {
		return toDeviceDomain(deviceM), true, nil
	}

	var existing model.DeviceModel
	if err := repo.db.WithContext(ctx).
		Where("fcm_id = ?", fcmID).
		First(&existing).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to find device by FCM ID")
	}

	return toDeviceDomain(&existing), false, nil
}

// FindActiveByOwner retrieves all active devices bound to an account.
func (repo *deviceRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Update persists the owner binding, the activity flag and the failure counter.
func (repo *deviceRepository) Update(ctx context.Context, device *entity.Device) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"owner_id":    device.OwnerID,
			"is_active":   device.IsActive,
			"fails_count": device.FailsCount,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid device owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		FCMID:      data.FCMID,
		OwnerID:    data.OwnerID,
		IsActive:   data.IsActive,
		FailsCount: data.FailsCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:         data.ID,
		FCMID:      data.FCMID,
		OwnerID:    data.OwnerID,
		IsActive:   data.IsActive,
		FailsCount: data.FailsCount,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
