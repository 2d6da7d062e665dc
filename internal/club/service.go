package club

import (
	"errors"

	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

var ErrClubNotFound = errors.New("club not found")

type ClubService struct {
	db *gorm.DB
}

func NewClubService(db *gorm.DB) *ClubService {
	return &ClubService{db: db}
}

type CreateClubInput struct {
	Name        string  `json:"name" binding:"required" example:"Technical Club"`
	Description string  `json:"description" example:"Coding, AI, and Robotics enthusiasts"`
	Category    string  `json:"category" example:"Technical"`
	LogoURL     *string `json:"logo_url"`
}

func (s *ClubService) ListClubs(skip, limit int) ([]Club, error) {
	var clubs []Club
	if err := s.db.Offset(skip).Limit(limit).Find(&clubs).Error; err != nil {
		return nil, err
	}
	return clubs, nil
}

func (s *ClubService) GetClub(id uint) (*Club, error) {
	var club Club
	if err := s.db.First(&club, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClubNotFound
		}
		return nil, err
	}
	return &club, nil
}

func (s *ClubService) CreateClub(input CreateClubInput) (*Club, error) {
	club := Club{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		LogoURL:     input.LogoURL,
	}

	if err := s.db.Create(&club).Error; err != nil {
		return nil, err
	}

	return &club, nil
}
