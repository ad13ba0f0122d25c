package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roomease/roomease-backend/internal/usecase/listing"
)

type ListingHandler struct {
	listingUseCase *listing.ListingUseCase
}

func NewListingHandler(listingUseCase *listing.ListingUseCase) *ListingHandler {
	return &ListingHandler{listingUseCase: listingUseCase}
}

// CreateListing handles POST /api/listings
// @Summary Create a listing
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body listing.CreateListingRequest true "Listing data"
// @Success 201 {object} domain.Listing
// @Failure 400 {object} ErrorResponse
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req listing.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.listingUseCase.CreateListing(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, envelope(gin.H{
		"message": "Listing created successfully",
		"data":    result,
	}))
}

// ListListings handles GET /api/listings
func (h *ListingHandler) ListListings(c *gin.Context) {
	result, err := h.listingUseCase.ListListings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"data": result}))
}

// GetListing handles GET /api/listings/:id
func (h *ListingHandler) GetListing(c *gin.Context) {
	result, err := h.listingUseCase.GetListing(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, envelope(gin.H{"data": result}))
}
