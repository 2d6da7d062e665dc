package college

import (
	"errors"

	. "campus-events/pkg/campus"

	nanoid "github.com/matoous/go-nanoid/v2"
	"gorm.io/gorm"
)

const inviteCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var ErrCollegeExists = errors.New("college already exists")

type CollegeService struct {
	db *gorm.DB
}

func NewCollegeService(db *gorm.DB) *CollegeService {
	return &CollegeService{db: db}
}

type CreateCollegeInput struct {
	Name string `json:"name" binding:"required" example:"City Engineering College"`
	Slug string `json:"slug" binding:"required" example:"city-engineering"`
}

func (s *CollegeService) ListColleges(skip, limit int) ([]College, error) {
	var colleges []College
	if err := s.db.Offset(skip).Limit(limit).Find(&colleges).Error; err != nil {
		return nil, err
	}
	return colleges, nil
}

func (s *CollegeService) CreateCollege(input CreateCollegeInput) (*College, error) {
	var existing College
	if err := s.db.First(&existing, "name = ?", input.Name).Error; err == nil {
		return nil, ErrCollegeExists
	}

	inviteCode, err := nanoid.Generate(inviteCodeAlphabet, 8)
	if err != nil {
		return nil, err
	}

	college := College{
		Name:       input.Name,
		Slug:       input.Slug,
		InviteCode: inviteCode,
		IsActive:   true,
	}

	if err := s.db.Create(&college).Error; err != nil {
		return nil, err
	}

	return &college, nil
}
