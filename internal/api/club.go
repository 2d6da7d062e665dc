package api

import (
	"errors"
	"strconv"

	cl "campus-events/internal/club"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClubHandlers struct {
	service *cl.ClubService
}

func NewClubHandlers(db *gorm.DB) *ClubHandlers {
	return &ClubHandlers{
		service: cl.NewClubService(db),
	}
}

// ListClubsHandler retrieves clubs
// @Summary List clubs
// @Tags Clubs
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} campus.Club
// @Router /api/v1/clubs [get]
func (h *ClubHandlers) ListClubsHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	clubs, err := h.service.ListClubs(skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve clubs"})
		return
	}

	c.JSON(200, clubs)
}

// CreateClubHandler creates a club (superuser only)
// @Summary Create club
// @Tags Clubs
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body club.CreateClubInput true "Club"
// @Success 200 {object} campus.Club
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/clubs [post]
func (h *ClubHandlers) CreateClubHandler(c *gin.Context) {
	var input cl.CreateClubInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	club, err := h.service.CreateClub(input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create club"})
		return
	}

	c.JSON(200, club)
}

// GetClubHandler retrieves a single club
// @Summary Get club by ID
// @Tags Clubs
// @Produce json
// @Param id path int true "Club ID"
// @Success 200 {object} campus.Club
// @Failure 404 {object} ErrorResponse "Club not found"
// @Router /api/v1/clubs/{id} [get]
func (h *ClubHandlers) GetClubHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid club ID"})
		return
	}

	club, err := h.service.GetClub(uint(id))
	if err != nil {
		if errors.Is(err, cl.ErrClubNotFound) {
			c.JSON(404, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to retrieve club"})
		return
	}

	c.JSON(200, club)
}
