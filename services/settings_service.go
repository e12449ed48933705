package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

type SettingsService struct {
	DB *gorm.DB
}

func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{DB: db}
}

// Get returns the singleton hotel settings row, creating an empty one if the
// seed never ran.
func (s *SettingsService) Get() (models.HotelSetting, error) {
	var setting models.HotelSetting
	err := s.DB.First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.HotelSetting{Name: "Moonlight Resort & Suites"}
		if err := s.DB.Create(&setting).Error; err != nil {
			return models.HotelSetting{}, fmt.Errorf("failed to create settings: %w", err)
		}
		return setting, nil
	}
	if err != nil {
		return models.HotelSetting{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return setting, nil
}

func (s *SettingsService) Update(update models.HotelSetting) (models.HotelSetting, error) {
	current, err := s.Get()
	if err != nil {
		return models.HotelSetting{}, err
	}
	update.ID = current.ID
	if err := s.DB.Model(&current).Updates(map[string]interface{}{
		"name":    update.Name,
		"address": update.Address,
		"phone":   update.Phone,
		"email":   update.Email,
		"website": update.Website,
	}).Error; err != nil {
		return models.HotelSetting{}, fmt.Errorf("failed to update settings: %w", err)
	}
	return s.Get()
}
