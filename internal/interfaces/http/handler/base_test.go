package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setAuthContext simulates an authenticated request without a real token
func setAuthContext(c *gin.Context, userID, customerID uuid.UUID, staff bool) {
	c.Set(middleware.JWTUserIDKey, userID.String())
	c.Set(middleware.JWTCustomerIDKey, customerID.String())
	c.Set(middleware.JWTIsStaffKey, staff)
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c, w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.SuccessWithMeta(c, []string{"a", "b"}, 41, 2, 20)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestHandleDomainError_KnownCode(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.HandleDomainError(c, shared.NewDomainError(dto.ErrCodeNotFound, "Product not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Product not found", resp.Error.Message)
}

func TestHandleDomainError_FieldErrors(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	err := shared.NewFieldError(dto.ErrCodeAlreadyExists, "review_status", "Already reviewed by user")
	h.HandleDomainError(c, err)

	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, []string{"Already reviewed by user"}, resp.Error.Fields["review_status"])
}

func TestHandleDomainError_UnknownError(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.HandleDomainError(c, assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
}

func TestGetUserID(t *testing.T) {
	c, _ := newTestContext(t)
	userID := uuid.New()
	setAuthContext(c, userID, uuid.New(), false)

	got, err := getUserID(c)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestGetUserID_Missing(t *testing.T) {
	c, _ := newTestContext(t)

	_, err := getUserID(c)
	assert.Error(t, err)
}

func TestGetCustomerID(t *testing.T) {
	c, _ := newTestContext(t)
	customerID := uuid.New()
	setAuthContext(c, uuid.New(), customerID, true)

	got, err := getCustomerID(c)
	require.NoError(t, err)
	assert.Equal(t, customerID, got)
	assert.True(t, isStaff(c))
}
