package api

import (
	tr "campus-events/internal/travel"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TravelHandlers struct {
	service *tr.TravelService
}

func NewTravelHandlers(db *gorm.DB) *TravelHandlers {
	return &TravelHandlers{
		service: tr.NewTravelService(db),
	}
}

// ListTravelPlansHandler retrieves travel plans
// @Summary List travel plans
// @Tags Travel
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Max rows to return"
// @Success 200 {array} campus.TravelPlan
// @Router /api/v1/travel [get]
func (h *TravelHandlers) ListTravelPlansHandler(c *gin.Context) {
	skip, limit := paginationParams(c)

	plans, err := h.service.ListTravelPlans(skip, limit)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to retrieve travel plans"})
		return
	}

	c.JSON(200, plans)
}

// CreateTravelPlanHandler creates a travel plan
// @Summary Create travel plan
// @Tags Travel
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body travel.CreateTravelPlanInput true "Travel plan"
// @Success 200 {object} campus.TravelPlan
// @Failure 400 {object} ErrorResponse "Bad request"
// @Router /api/v1/travel [post]
func (h *TravelHandlers) CreateTravelPlanHandler(c *gin.Context) {
	var input tr.CreateTravelPlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.CreateTravelPlan(c.GetUint("user_id"), input)
	if err != nil {
		c.JSON(500, gin.H{"error": "Failed to create travel plan"})
		return
	}

	c.JSON(200, plan)
}
