package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomease/roomease-backend/internal/usecase/profile"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{profileUseCase: profileUseCase}
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get a single profile
// @Tags profiles
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} profile.ProfileResponse
// @Failure 404 {object} ErrorResponse
// @Router /profiles/{id} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	result, err := h.profileUseCase.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"data": result}))
}

// ListProfiles handles GET /api/profiles
// @Summary List profiles with optional filters
// @Tags profiles
// @Produce json
// @Param gender query string false "Exact gender match"
// @Param minBudget query int false "Requested budget window lower bound"
// @Param maxBudget query int false "Requested budget window upper bound"
// @Param location query string false "Preferred-area substring"
// @Param profession query string false "Profession substring"
// @Param lookingFor query string false "Room, Roommate or Both"
// @Param page query int false "1-indexed page"
// @Param limit query int false "Page size"
// @Success 200 {object} profile.ListProfilesResult
// @Router /profiles [get]
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	var req profile.ListProfilesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.profileUseCase.ListProfiles(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{
		"count":      len(result.Profiles),
		"total":      result.Total,
		"pagination": result.Pagination,
		"data":       result.Profiles,
	}))
}

// UpdateProfile handles PUT /api/profiles/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req profile.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.profileUseCase.UpdateProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{
		"message": "Profile updated successfully",
		"data":    result,
	}))
}

// CompleteProfile handles POST /api/profiles/:id/complete
func (h *ProfileHandler) CompleteProfile(c *gin.Context) {
	var req profile.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.profileUseCase.CompleteProfile(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope(gin.H{
		"message": "Profile completed successfully",
		"data":    result,
	}))
}

// DeleteProfile handles DELETE /api/profiles/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	if err := h.profileUseCase.DeleteProfile(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"message": "Profile deleted successfully"}))
}
