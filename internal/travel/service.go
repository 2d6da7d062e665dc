package travel

import (
	"errors"
	"time"

	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

type TravelService struct {
	db *gorm.DB
}

func NewTravelService(db *gorm.DB) *TravelService {
	return &TravelService{db: db}
}

type CreateTravelPlanInput struct {
	Destination    string    `json:"destination" binding:"required" example:"Airport"`
	DateTime       time.Time `json:"date_time" binding:"required"`
	Mode           string    `json:"mode" example:"Car"`
	SeatsAvailable int       `json:"seats_available" example:"3"`
}

func (s *TravelService) ListTravelPlans(skip, limit int) ([]TravelPlan, error) {
	var plans []TravelPlan
	if err := s.db.Offset(skip).Limit(limit).Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (s *TravelService) CreateTravelPlan(organizerID uint, input CreateTravelPlanInput) (*TravelPlan, error) {
	if input.Destination == "" {
		return nil, errors.New("destination cannot be empty")
	}

	seats := input.SeatsAvailable
	if seats <= 0 {
		seats = 1
	}

	plan := TravelPlan{
		Destination:    input.Destination,
		DateTime:       input.DateTime,
		Mode:           input.Mode,
		SeatsAvailable: seats,
		OrganizerID:    organizerID,
	}

	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}

	return &plan, nil
}
