package api

import (
	"errors"

	col "campus-events/internal/college"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CollegeHandlers struct {
	service *col.CollegeService
}

func NewCollegeHandlers(db *gorm.DB) *CollegeHandlers {
	return &CollegeHandlers{
		service: col.NewCollegeService(db),
	}
}

// ListCollegesHandler retrieves colleges (superuser only)
// @Summary List colleges
// @Tags Colleges
// @Produce json
// @Security Bearer
// @Success 200 {array} campus.College
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/colleges [get]
func (h *CollegeHandlers) ListCollegesHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	colleges, err := h.service.ListColleges(skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve colleges"})
		return
	}

	c.JSON(200, colleges)
}

// CreateCollegeHandler creates a college with a fresh invite code (superuser only)
// @Summary Create college
// @Tags Colleges
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body college.CreateCollegeInput true "College"
// @Success 200 {object} campus.College
// @Failure 400 {object} ErrorResponse "College already exists"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Router /api/v1/colleges [post]
func (h *CollegeHandlers) CreateCollegeHandler(c *gin.Context) {
	var input col.CreateCollegeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	college, err := h.service.CreateCollege(input)
	if err != nil {
		if errors.Is(err, col.ErrCollegeExists) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(500, gin.H{"error": "Failed to create college"})
		return
	}

	c.JSON(200, college)
}
