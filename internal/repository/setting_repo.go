package repository

import (
	"context"

	"launchpad/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the value stored under key, or ErrNotFound.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, error) {
	var s models.SystemSetting
	if err := r.db.WithContext(ctx).Where(&models.SystemSetting{Key: key}).First(&s).Error; err != nil {
		return "", notFound(err)
	}
	return s.Value, nil
}

func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.SystemSetting{Key: key, Value: value}).Error
}

func (r *SettingRepository) GetAll(ctx context.Context) ([]models.SystemSetting, error) {
	var list []models.SystemSetting
	err := r.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&list).Error
	return list, err
}

// SeedDefaults inserts default settings if they don't already exist.
func (r *SettingRepository) SeedDefaults(ctx context.Context, defaults map[string]string) error {
	for k, v := range defaults {
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.SystemSetting{Key: k, Value: v}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
