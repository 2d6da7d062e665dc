package api

import (
	co "campus-events/internal/community"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityHandlers struct {
	service *co.CommunityService
}

func NewCommunityHandlers(db *gorm.DB) *CommunityHandlers {
	return &CommunityHandlers{
		service: co.NewCommunityService(db),
	}
}

// ListCommunitiesHandler retrieves communities
// @Summary List communities
// @Tags Communities
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} campus.Community
// @Router /api/v1/communities [get]
func (h *CommunityHandlers) ListCommunitiesHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	communities, err := h.service.ListCommunities(skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve communities"})
		return
	}

	c.JSON(200, communities)
}

// CreateCommunityHandler creates a community (superuser only)
// @Summary Create community
// @Tags Communities
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body community.CreateCommunityInput true "Community"
// @Success 200 {object} campus.Community
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/communities [post]
func (h *CommunityHandlers) CreateCommunityHandler(c *gin.Context) {
	var input co.CreateCommunityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	community, err := h.service.CreateCommunity(input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create community"})
		return
	}

	c.JSON(200, community)
}
