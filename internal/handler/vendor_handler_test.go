package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/models"
)

func TestVendorCreateAndGet(t *testing.T) {
	app, _ := setupTestApp(t)

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/vendors", dto.VendorCreateRequest{
		Name:    "Acme Logistics",
		Company: "Acme Corp",
		Email:   "sales@acme.test",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var created dto.VendorResponse
	decodeData(t, decodeEnvelope(t, res), &created)
	require.NotEmpty(t, created.ID)

	res, err = app.Test(jsonRequest(t, http.MethodGet, "/api/v1/vendors/"+created.ID, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var fetched dto.VendorResponse
	decodeData(t, decodeEnvelope(t, res), &fetched)
	require.Equal(t, "Acme Logistics", fetched.Name)
	require.Equal(t, "Acme Corp", fetched.Company)
}

func TestVendorCreateWithoutName(t *testing.T) {
	app, _ := setupTestApp(t)

	res, err := app.Test(jsonRequest(t, http.MethodPost, "/api/v1/vendors", dto.VendorCreateRequest{Company: "Acme Corp"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestVendorGetUnknown(t *testing.T) {
	app, _ := setupTestApp(t)

	res, err := app.Test(jsonRequest(t, http.MethodGet, "/api/v1/vendors/ghost", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestVendorUpdate(t *testing.T) {
	app, db := setupTestApp(t)
	vendor := seedVendor(t, db, "Acme Logistics")

	company := "Acme Holdings"
	res, err := app.Test(jsonRequest(t, http.MethodPut, "/api/v1/vendors/"+vendor.ID, dto.VendorUpdateRequest{Company: &company}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var updated dto.VendorResponse
	decodeData(t, decodeEnvelope(t, res), &updated)
	require.Equal(t, "Acme Logistics", updated.Name)
	require.Equal(t, "Acme Holdings", updated.Company)
}

func TestVendorDeleteByBody(t *testing.T) {
	app, db := setupTestApp(t)
	vendor := seedVendor(t, db, "Acme Logistics")

	res, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/vendors", dto.VendorDeleteRequest{VendorID: vendor.ID}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Vendor{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestVendorDeleteByBodyRequiresID(t *testing.T) {
	app, _ := setupTestApp(t)

	res, err := app.Test(jsonRequest(t, http.MethodDelete, "/api/v1/vendors", dto.VendorDeleteRequest{}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}
