package community

import (
	. "campus-events/pkg/campus"

	"gorm.io/gorm"
)

type CommunityService struct {
	db *gorm.DB
}

func NewCommunityService(db *gorm.DB) *CommunityService {
	return &CommunityService{db: db}
}

type CreateCommunityInput struct {
	Name        string  `json:"name" binding:"required" example:"Freshers Batch 2026"`
	Description string  `json:"description" example:"Official group for all new students"`
	MemberCount int     `json:"member_count"`
	ImageURL    *string `json:"image_url"`
}

func (s *CommunityService) ListCommunities(skip, limit int) ([]Community, error) {
	var communities []Community
	if err := s.db.Offset(skip).Limit(limit).Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

func (s *CommunityService) CreateCommunity(input CreateCommunityInput) (*Community, error) {
	community := Community{
		Name:        input.Name,
		Description: input.Description,
		MemberCount: input.MemberCount,
		ImageURL:    input.ImageURL,
	}

	if err := s.db.Create(&community).Error; err != nil {
		return nil, err
	}

	return &community, nil
}
