package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var (
	ErrTaskNotFound   = errors.New("task_not_found")
	ErrTaskWrongState = errors.New("task_wrong_state")
)

type HousekeepingService struct {
	DB  *gorm.DB
	now func() time.Time
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db, now: time.Now}
}

func (s *HousekeepingService) Create(task models.HousekeepingTask) (models.HousekeepingTask, error) {
	if !models.ValidHousekeepingKind(task.Kind) {
		return models.HousekeepingTask{}, fmt.Errorf("unknown housekeeping kind %q", task.Kind)
	}
	var room models.Room
	if err := s.DB.First(&room, task.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HousekeepingTask{}, ErrRoomNotFound
		}
		return models.HousekeepingTask{}, err
	}

	task.Status = models.TaskStatusOpen
	if err := s.DB.Create(&task).Error; err != nil {
		return models.HousekeepingTask{}, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *HousekeepingService) GetAll(status string) ([]models.HousekeepingTask, error) {
	q := s.DB.Preload("Room").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var tasks []models.HousekeepingTask
	if err := q.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	return tasks, nil
}

func (s *HousekeepingService) Start(id uint, assignee string) (models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if task.Status != models.TaskStatusOpen {
			return fmt.Errorf("%w: %s", ErrTaskWrongState, task.Status)
		}
		task.Status = models.TaskStatusInProgress
		if assignee != "" {
			task.Assignee = assignee
		}
		return tx.Save(&task).Error
	})
	if txErr != nil {
		return models.HousekeepingTask{}, txErr
	}
	return task, nil
}

// Complete finishes a task. Completing a cleaning task on a room that is in
// cleaning status returns the room to available.
func (s *HousekeepingService) Complete(id uint) (models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	now := s.now().UTC()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}
		if task.Status == models.TaskStatusDone {
			return fmt.Errorf("%w: already done", ErrTaskWrongState)
		}

		task.Status = models.TaskStatusDone
		task.CompletedAt = &now
		if err := tx.Save(&task).Error; err != nil {
			return err
		}

		if task.Kind == models.HousekeepingKindCleaning || task.Kind == models.HousekeepingKindDeepClean {
			if err := tx.Model(&models.Room{}).
				Where("id = ? AND status = ?", task.RoomID, models.RoomStatusCleaning).
				Update("status", models.RoomStatusAvailable).Error; err != nil {
				return fmt.Errorf("failed to release room: %w", err)
			}
		}
		return nil
	})
	if txErr != nil {
		return models.HousekeepingTask{}, txErr
	}
	return task, nil
}
