package handler

import (
	"github.com/gin-gonic/gin"
	customerapp "github.com/storefront/backend/internal/application/customer"
)

// CustomerHandler handles customer profile endpoints
type CustomerHandler struct {
	BaseHandler
	customerService *customerapp.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(customerService *customerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GetMe godoc
// @Summary      Get own profile
// @Tags         customers
// @Produce      json
// @Success      200 {object} dto.Response{data=customerapp.CustomerResponse}
// @Security     BearerAuth
// @Router       /customers/me [get]
func (h *CustomerHandler) GetMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	profile, err := h.customerService.GetMe(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// UpdateMe godoc
// @Summary      Update own profile
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        request body customerapp.UpdateProfileRequest true "Profile update request"
// @Success      200 {object} dto.Response{data=customerapp.CustomerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/me [put]
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req customerapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	profile, err := h.customerService.UpdateMe(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// DeleteMe godoc
// @Summary      Delete own account
// @Description  Remove the customer profile together with its user account
// @Tags         customers
// @Produce      json
// @Success      204 "No Content"
// @Security     BearerAuth
// @Router       /customers/me [delete]
func (h *CustomerHandler) DeleteMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.customerService.DeleteMe(c.Request.Context(), userID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// GetByID godoc
// @Summary      Get a customer (staff)
// @Tags         customers
// @Produce      json
// @Param        id path string true "Customer ID"
// @Success      200 {object} dto.Response{data=customerapp.CustomerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	customerID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	profile, err := h.customerService.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, profile)
}

// List godoc
// @Summary      List customers (staff)
// @Tags         customers
// @Produce      json
// @Param        membership query string false "Membership level (B, S or G)"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]customerapp.CustomerResponse}
// @Security     BearerAuth
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var filter customerapp.CustomerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ValidationError(c, err)
		return
	}

	result, err := h.customerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
