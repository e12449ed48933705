package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var ErrInvalidRoom = errors.New("invalid_room")

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func validateRoom(room models.Room) error {
	if room.RoomNumber == "" {
		return fmt.Errorf("%w: room number is required", ErrInvalidRoom)
	}
	if !models.ValidRoomType(room.Type) {
		return fmt.Errorf("%w: unknown room type %q", ErrInvalidRoom, room.Type)
	}
	if room.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be at least 1", ErrInvalidRoom)
	}
	if room.PricePerNight.IsNegative() {
		return fmt.Errorf("%w: price per night must not be negative", ErrInvalidRoom)
	}
	return nil
}

func (s *RoomService) Create(room models.Room) (models.Room, error) {
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if err := validateRoom(room); err != nil {
		return models.Room{}, err
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

// RoomFilter narrows the staff room list.
type RoomFilter struct {
	Status string
	Type   string
}

func (s *RoomService) GetAll(filter RoomFilter) ([]models.Room, error) {
	q := s.DB.Preload("RoomType").Order("room_number ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// GetPublic lists rooms bookable by guests.
func (s *RoomService) GetPublic() ([]models.PublicRoom, error) {
	rooms, err := s.GetAll(RoomFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicRoom, 0, len(rooms))
	for _, r := range rooms {
		if r.Status == models.RoomStatusMaintenance {
			continue
		}
		out = append(out, r.Public())
	}
	return out, nil
}

func (s *RoomService) GetByID(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return room, ErrRoomNotFound
		}
		return room, fmt.Errorf("failed to retrieve room: %w", err)
	}
	return room, nil
}

func (s *RoomService) Update(room models.Room) (models.Room, error) {
	if err := validateRoom(room); err != nil {
		return models.Room{}, err
	}
	if err := s.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room: %w", err)
	}
	return s.GetByID(room.ID)
}

func (s *RoomService) UpdateStatus(id uint, status string) (models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return models.Room{}, fmt.Errorf("%w: unknown status %q", ErrInvalidRoom, status)
	}
	res := s.DB.Model(&models.Room{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return models.Room{}, fmt.Errorf("failed to update room status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Room{}, ErrRoomNotFound
	}
	return s.GetByID(id)
}

func (s *RoomService) Delete(id uint) error {
	res := s.DB.Delete(&models.Room{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
