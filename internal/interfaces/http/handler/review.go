package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	reviewapp "github.com/storefront/backend/internal/application/review"
)

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	BaseHandler
	reviewService *reviewapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *reviewapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create godoc
// @Summary      Review a product
// @Description  Create a review; a customer can review each product once
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        request body reviewapp.CreateReviewRequest true "Review"
// @Success      201 {object} dto.Response{data=reviewapp.ReviewResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req reviewapp.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	review, err := h.reviewService.Create(c.Request.Context(), productID, customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, review)
}

// Get godoc
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Success      200 {object} dto.Response{data=reviewapp.ReviewResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /products/{id}/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	reviewID, err := parseIDParam(c, "review_id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	review, err := h.reviewService.Get(c.Request.Context(), productID, reviewID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// List godoc
// @Summary      List reviews of a product
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]reviewapp.ReviewResponse}
// @Router       /products/{id}/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var filter reviewapp.ReviewListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.reviewService.List(c.Request.Context(), productID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update godoc
// @Summary      Update a review
// @Description  Update a review; only its author or staff may do so
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Param        request body reviewapp.UpdateReviewRequest true "Review update"
// @Success      200 {object} dto.Response{data=reviewapp.ReviewResponse}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id}/reviews/{review_id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	reviewID, err := parseIDParam(c, "review_id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if !h.authorize(c, reviewID) {
		return
	}

	var req reviewapp.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	review, err := h.reviewService.Update(c.Request.Context(), productID, reviewID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, review)
}

// Delete godoc
// @Summary      Delete a review
// @Description  Delete a review; only its author or staff may do so
// @Tags         reviews
// @Produce      json
// @Param        id path string true "Product ID"
// @Param        review_id path string true "Review ID"
// @Success      204 "No Content"
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /products/{id}/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	reviewID, err := parseIDParam(c, "review_id")
	if err != nil {
		h.BadRequest(c, "Invalid review ID")
		return
	}

	if !h.authorize(c, reviewID) {
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), productID, reviewID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// authorize checks that the caller may modify the review, writing the
// error response itself when not. Missing reviews fall through so the
// service can report 404 with the product scope applied.
func (h *ReviewHandler) authorize(c *gin.Context, reviewID uuid.UUID) bool {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return false
	}

	allowed, err := h.reviewService.CanModify(c.Request.Context(), reviewID, customerID, isStaff(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return false
	}
	if !allowed {
		h.Forbidden(c, "Only the review author or staff may modify a review")
		return false
	}
	return true
}
