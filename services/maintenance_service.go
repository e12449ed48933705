package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrRequestNotFound = errors.New("maintenance_request_not_found")

type MaintenanceService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db, now: time.Now}
}

// Open files a maintenance request and takes the room out of service.
func (s *MaintenanceService) Open(req models.MaintenanceRequest) (models.MaintenanceRequest, error) {
	if req.Title == "" {
		return models.MaintenanceRequest{}, errors.New("title is required")
	}
	if req.Priority == "" {
		req.Priority = models.MaintenancePriorityNormal
	}
	if !models.ValidMaintenancePriority(req.Priority) {
		return models.MaintenanceRequest{}, fmt.Errorf("unknown priority %q", req.Priority)
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		req.Status = models.MaintenanceStatusOpen
		if err := tx.Create(&req).Error; err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", req.RoomID).
			Update("status", models.RoomStatusMaintenance).Error
	})
	if txErr != nil {
		return models.MaintenanceRequest{}, txErr
	}
	return req, nil
}

func (s *MaintenanceService) GetAll(status string) ([]models.MaintenanceRequest, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var reqs []models.MaintenanceRequest
	if err := q.Find(&reqs).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve requests: %w", err)
	}
	return reqs, nil
}

func (s *MaintenanceService) Start(id uint) (models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != models.MaintenanceStatusOpen {
			return fmt.Errorf("request is %s, expected open", req.Status)
		}
		req.Status = models.MaintenanceStatusInProgress
		return tx.Save(&req).Error
	})
	if txErr != nil {
		return models.MaintenanceRequest{}, txErr
	}
	return req, nil
}

// Resolve closes a request. Resolving the last unresolved request on a room
// puts the room back in service.
func (s *MaintenanceService) Resolve(id uint) (models.MaintenanceRequest, error) {
	var req models.MaintenanceRequest
	now := s.now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&req, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status == models.MaintenanceStatusResolved {
			return errors.New("request already resolved")
		}

		req.Status = models.MaintenanceStatusResolved
		req.ResolvedAt = &now
		if err := tx.Save(&req).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.MaintenanceRequest{}).
			Where("room_id = ? AND status <> ?", req.RoomID, models.MaintenanceStatusResolved).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			if err := tx.Model(&models.Room{}).
				Where("id = ? AND status = ?", req.RoomID, models.RoomStatusMaintenance).
				Update("status", models.RoomStatusAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return models.MaintenanceRequest{}, txErr
	}
	return req, nil
}
