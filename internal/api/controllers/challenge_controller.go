package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitspace/internal/models/db_models"
	"fitspace/internal/models/request_models"
	"fitspace/internal/models/response_models"
	"fitspace/internal/services"
	"fitspace/pkg/utils"
)

type ChallengeController struct {
	challengeService services.ChallengeServiceInterface
}

func NewChallengeController(challengeService services.ChallengeServiceInterface) *ChallengeController {
	return &ChallengeController{
		challengeService: challengeService,
	}
}

func (ch *ChallengeController) List(c *gin.Context) {
	challenges, err := ch.challengeService.List(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, challengeResponses(challenges), "Challenges fetched successfully")
}

func (ch *ChallengeController) Create(c *gin.Context) {
	var req request_models.CreateChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	challenge, err := ch.challengeService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChallengeFromModel(challenge), "Challenge created")
}

// Toggle flips the completed flag of one of the caller's challenges.
func (ch *ChallengeController) Toggle(c *gin.Context) {
	challenge, err := ch.challengeService.Toggle(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChallengeFromModel(challenge), "Challenge toggled")
}

func challengeResponses(challenges []db_models.Challenge) []response_models.ChallengeResponse {
	out := make([]response_models.ChallengeResponse, 0, len(challenges))
	for i := range challenges {
		out = append(out, response_models.ChallengeFromModel(&challenges[i]))
	}
	return out
}
