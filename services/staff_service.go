package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrStaffNotFound = errors.New("staff_not_found")

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

func (s *StaffService) Create(staff models.Staff, password string) (models.Staff, error) {
	staff.Email = strings.ToLower(strings.TrimSpace(staff.Email))
	if staff.Email == "" || staff.FullName == "" {
		return models.Staff{}, errors.New("full name and email are required")
	}
	if len(password) < 8 {
		return models.Staff{}, errors.New("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Staff{}, fmt.Errorf("failed to hash password: %w", err)
	}
	staff.Password = string(hash)
	staff.Active = true

	if err := s.DB.Create(&staff).Error; err != nil {
		return models.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) GetAll() ([]models.Staff, error) {
	var staff []models.Staff
	if err := s.DB.Order("full_name ASC").Find(&staff).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) GetByID(id uint) (models.Staff, error) {
	var staff models.Staff
	if err := s.DB.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return staff, ErrStaffNotFound
		}
		return staff, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	return staff, nil
}

func (s *StaffService) Update(staff models.Staff) (models.Staff, error) {
	updates := map[string]interface{}{
		"full_name": staff.FullName,
		"phone":     staff.Phone,
		"position":  staff.Position,
		"active":    staff.Active,
	}
	res := s.DB.Model(&models.Staff{}).Where("id = ?", staff.ID).Updates(updates)
	if res.Error != nil {
		return models.Staff{}, fmt.Errorf("failed to update staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Staff{}, ErrStaffNotFound
	}
	return s.GetByID(staff.ID)
}

func (s *StaffService) Delete(id uint) error {
	res := s.DB.Delete(&models.Staff{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrStaffNotFound
	}
	return nil
}
