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

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// GetMe godoc
// @Summary Get the current user
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (u *UserController) GetMe(c *gin.Context) {
	user, err := u.userService.GetMe(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserFromModel(user), "User fetched successfully")
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Description Partial update; omitted fields are left unchanged
// @Tags Users
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [put]
func (u *UserController) UpdateProfile(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := u.userService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserFromModel(user), "Profile updated successfully")
}

func (u *UserController) UpgradeToPremium(c *gin.Context) {
	user, err := u.userService.UpgradeToPremium(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UserFromModel(user), "Account upgraded to premium")
}

func (u *UserController) AddProgress(c *gin.Context) {
	var req request_models.AddProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := u.userService.AddProgress(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ProgressFromModel(entry), "Progress entry added")
}

// GetProgress returns the weight history oldest first.
func (u *UserController) GetProgress(c *gin.Context) {
	entries, err := u.userService.GetProgress(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, progressResponses(entries), "Progress fetched successfully")
}

func (u *UserController) AddWorkout(c *gin.Context) {
	var req request_models.AddWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	entry, err := u.userService.AddWorkout(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.WorkoutFromModel(entry), "Workout recorded")
}

// GetWorkoutHistory returns workouts most recent first.
func (u *UserController) GetWorkoutHistory(c *gin.Context) {
	entries, err := u.userService.GetWorkoutHistory(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, workoutResponses(entries), "Workout history fetched successfully")
}

func progressResponses(entries []db_models.ProgressEntry) []response_models.ProgressResponse {
	out := make([]response_models.ProgressResponse, 0, len(entries))
	for i := range entries {
		out = append(out, response_models.ProgressFromModel(&entries[i]))
	}
	return out
}

func workoutResponses(entries []db_models.WorkoutHistory) []response_models.WorkoutResponse {
	out := make([]response_models.WorkoutResponse, 0, len(entries))
	for i := range entries {
		out = append(out, response_models.WorkoutFromModel(&entries[i]))
	}
	return out
}
