// Package settingsrepo is the key/value configuration store, table
// config_parameters.
package settingsrepo

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/consignment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ParameterDTO struct {
	Key       string `gorm:"type:varchar(255);primaryKey"`
	Value     string `gorm:"type:text;not null;default:''"`
	UpdatedAt time.Time
}

func (ParameterDTO) TableName() string {
	return "config_parameters"
}

type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Values returns the stored values of keys. Absent keys are absent from the
// result.
func (r *GormSettingsRepository) Values(ctx context.Context, keys ...string) (map[string]string, error) {
	var dtos []ParameterDTO
	if err := r.db.WithContext(ctx).Where("key IN ?", keys).Find(&dtos).Error; err != nil {
		return nil, err
	}

	values := make(map[string]string, len(dtos))
	for _, dto := range dtos {
		values[dto.Key] = dto.Value
	}
	return values, nil
}

// CarrierSettings reads the courier keys as stored right now.
func (r *GormSettingsRepository) CarrierSettings(ctx context.Context) (consignment.SettingsParams, error) {
	values, err := r.Values(ctx,
		consignment.KeyAPIToken,
		consignment.KeyAccountNo,
		consignment.KeySubscriptionKey,
		consignment.KeyUseSandbox,
	)
	if err != nil {
		return consignment.SettingsParams{}, err
	}

	return consignment.SettingsParams{
		APIToken:        values[consignment.KeyAPIToken],
		AccountNo:       values[consignment.KeyAccountNo],
		SubscriptionKey: values[consignment.KeySubscriptionKey],
		UseSandbox:      values[consignment.KeyUseSandbox],
	}, nil
}

func (r *GormSettingsRepository) Put(ctx context.Context, key, value string) error {
	dto := ParameterDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&dto).Error
}

// PutIfAbsent stores value unless key already has one. It reports whether
// the value was written.
func (r *GormSettingsRepository) PutIfAbsent(ctx context.Context, key, value string) (bool, error) {
	dto := ParameterDTO{Key: key, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
