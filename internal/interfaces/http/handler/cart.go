package handler

import (
	"github.com/gin-gonic/gin"
	cartapp "github.com/storefront/backend/internal/application/cart"
)

// CartHandler handles anonymous cart endpoints. Carts are addressed by
// UUID only; no authentication is required.
type CartHandler struct {
	BaseHandler
	cartService *cartapp.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService *cartapp.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// Create godoc
// @Summary      Create a cart
// @Tags         carts
// @Produce      json
// @Success      201 {object} dto.Response{data=cartapp.CartResponse}
// @Router       /carts [post]
func (h *CartHandler) Create(c *gin.Context) {
	cart, err := h.cartService.Create(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart)
}

// Get godoc
// @Summary      Get a cart
// @Tags         carts
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /carts/{id} [get]
func (h *CartHandler) Get(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	cart, err := h.cartService.Get(c.Request.Context(), cartID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart)
}

// AddItem godoc
// @Summary      Add a product to a cart
// @Description  Add a product to the cart, merging with an existing line
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body cartapp.AddItemRequest true "Item to add"
// @Success      201 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req cartapp.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	cart, err := h.cartService.AddItem(c.Request.Context(), cartID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, cart)
}

// UpdateItem godoc
// @Summary      Change a cart line's quantity
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        item_id path string true "Cart item ID"
// @Param        request body cartapp.UpdateItemRequest true "New quantity"
// @Success      200 {object} dto.Response{data=cartapp.CartResponse}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /carts/{id}/items/{item_id} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req cartapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	cart, err := h.cartService.UpdateItem(c.Request.Context(), cartID, itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, cart)
}

// RemoveItem godoc
// @Summary      Remove a line from a cart
// @Tags         carts
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        item_id path string true "Cart item ID"
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /carts/{id}/items/{item_id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	itemID, err := parseIDParam(c, "item_id")
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.cartService.RemoveItem(c.Request.Context(), cartID, itemID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete godoc
// @Summary      Delete a cart
// @Tags         carts
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /carts/{id} [delete]
func (h *CartHandler) Delete(c *gin.Context) {
	cartID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	if err := h.cartService.Delete(c.Request.Context(), cartID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
