package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitspace/internal/models/request_models"
	"fitspace/internal/services"
	"fitspace/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlan godoc
// @Summary Generate a personalized fitness and diet plan
// @Description Builds a prompt from the stored profile, calls the AI provider
// @Description and replaces the active plan. Requires a complete profile.
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.GeneratePlanRequest true "Plan goal"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/generate-plan [post]
func (p *PlanController) GeneratePlan(c *gin.Context) {
	var req request_models.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	payload, err := p.planService.GeneratePlan(c.Request.Context(), c.GetString("user_id"), req.Goal)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payload, "Plan generated successfully")
}

// GetCurrentPlan godoc
// @Summary Get the current active plan
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /plans/current [get]
func (p *PlanController) GetCurrentPlan(c *gin.Context) {
	payload, err := p.planService.GetCurrentPlan(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payload, "Plan fetched successfully")
}

// GetChatConfig godoc
// @Summary Get AI coach chat configuration
// @Description Premium only. Returns the model, system instruction and
// @Description temperature for a chat session grounded on the active plan.
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /ai/chat-config [post]
func (p *PlanController) GetChatConfig(c *gin.Context) {
	config, err := p.planService.BuildChatConfig(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, config, "Chat configuration created")
}
