package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrRoomTypeNotFound = errors.New("room_type_not_found")

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetAll() ([]models.RoomType, error) {
	var types []models.RoomType
	if err := s.DB.Order("type_name ASC").Find(&types).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return types, nil
}

func (s *RoomTypeService) Create(rt models.RoomType) (models.RoomType, error) {
	if rt.TypeName == "" {
		return models.RoomType{}, errors.New("type name is required")
	}
	if err := s.DB.Create(&rt).Error; err != nil {
		return models.RoomType{}, fmt.Errorf("failed to create room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) Delete(id uint) error {
	res := s.DB.Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}
