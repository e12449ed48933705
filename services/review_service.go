package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"moonlight-backend/models"
)

var (
	ErrReviewNotFound = errors.New("review_not_found")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// Create stores a guest review pending moderation.
func (s *ReviewService) Create(review models.Review) (models.Review, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return models.Review{}, ErrInvalidRating
	}
	var room models.Room
	if err := s.DB.First(&room, review.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Review{}, ErrRoomNotFound
		}
		return models.Review{}, err
	}

	review.Approved = false
	if err := s.DB.Create(&review).Error; err != nil {
		return models.Review{}, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// GetPublic lists approved reviews, newest first.
func (s *ReviewService) GetPublic(roomID uint) ([]models.Review, error) {
	q := s.DB.Where("approved = ?", true).Order("created_at DESC")
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	var reviews []models.Review
	if err := q.Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// GetAll is the moderation queue view.
func (s *ReviewService) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Preload("Room").Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) SetApproved(id uint, approved bool) (models.Review, error) {
	res := s.DB.Model(&models.Review{}).Where("id = ?", id).Update("approved", approved)
	if res.Error != nil {
		return models.Review{}, fmt.Errorf("failed to update review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Review{}, ErrReviewNotFound
	}
	var review models.Review
	if err := s.DB.First(&review, id).Error; err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (s *ReviewService) Delete(id uint) error {
	res := s.DB.Delete(&models.Review{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
