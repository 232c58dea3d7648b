package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/recell/backend/internal/application/partner"
	"github.com/recell/backend/internal/interfaces/http/dto"
)

func newSupplierRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := newMemSupplierRepo()
	router := gin.New()
	NewSupplierHandler(partnerapp.NewSupplierService(repo)).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func createSupplier(t *testing.T, router *gin.Engine, name string) partnerapp.SupplierResponse {
	t.Helper()
	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/partner/suppliers", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var supplier partnerapp.SupplierResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &supplier))
	return supplier
}

func TestSupplierHandlerCreate(t *testing.T) {
	router := newSupplierRouter()

	supplier := createSupplier(t, router, "PhoneSource Ltd")

	assert.Equal(t, "PhoneSource Ltd", supplier.Name)
	assert.Equal(t, "active", supplier.Status)
}

func TestSupplierHandlerCreateMissingName(t *testing.T) {
	router := newSupplierRouter()

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/partner/suppliers", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, envelope.Error)
}

func TestSupplierHandlerUpdate(t *testing.T) {
	router := newSupplierRouter()
	supplier := createSupplier(t, router, "PhoneSource Ltd")

	body := map[string]string{
		"name":         "PhoneSource International",
		"contact_name": "Dana Lee",
		"phone":        "+44 20 7946 0958",
	}
	rec, envelope := doJSON(t, router, http.MethodPut, "/api/v1/partner/suppliers/"+supplier.ID.String(), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated partnerapp.SupplierResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &updated))
	assert.Equal(t, "PhoneSource International", updated.Name)
	assert.Equal(t, "Dana Lee", updated.ContactName)
}

func TestSupplierHandlerDeactivateAndActivate(t *testing.T) {
	router := newSupplierRouter()
	supplier := createSupplier(t, router, "PhoneSource Ltd")

	rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/partner/suppliers/"+supplier.ID.String()+"/deactivate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var deactivated partnerapp.SupplierResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &deactivated))
	assert.Equal(t, "inactive", deactivated.Status)

	rec, envelope = doJSON(t, router, http.MethodPost, "/api/v1/partner/suppliers/"+supplier.ID.String()+"/activate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var activated partnerapp.SupplierResponse
	require.NoError(t, json.Unmarshal(envelope.Data, &activated))
	assert.Equal(t, "active", activated.Status)
}

func TestSupplierHandlerDelete(t *testing.T) {
	router := newSupplierRouter()
	supplier := createSupplier(t, router, "PhoneSource Ltd")

	rec0, _ := doJSON(t, router, http.MethodDelete, "/api/v1/partner/suppliers/"+supplier.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec0.Code)

	rec, getEnvelope := doJSON(t, router, http.MethodGet, "/api/v1/partner/suppliers/"+supplier.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, getEnvelope.Error)
	assert.Equal(t, dto.ErrCodeNotFound, getEnvelope.Error.Code)
}
