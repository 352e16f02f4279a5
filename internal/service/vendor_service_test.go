package service

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/vendoreval/vendoreval-api/internal/dto"
	"github.com/vendoreval/vendoreval-api/internal/models"
)

func TestVendorServiceCreateSanitizesFields(t *testing.T) {
	repo := newFakeVendorRepo()
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	vendor, err := svc.Create(context.Background(), dto.VendorCreateRequest{
		Name:    `<img src=x onerror=alert(1)>Acme`,
		Company: "<b>Acme Corp</b>",
		Email:   " sales@acme.test ",
	})
	require.NoError(t, err)
	require.Equal(t, "Acme", vendor.Name)
	require.Equal(t, "Acme Corp", vendor.Company)
	require.Equal(t, "sales@acme.test", vendor.Email)
}

func TestVendorServiceCreateRequiresName(t *testing.T) {
	repo := newFakeVendorRepo()
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	_, err := svc.Create(context.Background(), dto.VendorCreateRequest{Name: "   "})
	require.Error(t, err)
	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
	require.Empty(t, repo.vendors)
}

func TestVendorServiceUpdatePartialFields(t *testing.T) {
	repo := newFakeVendorRepo(models.Vendor{ID: "v1", Name: "Acme", Company: "Acme Corp", Email: "sales@acme.test"})
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	company := "Acme Holdings"
	vendor, err := svc.Update(context.Background(), "v1", dto.VendorUpdateRequest{Company: &company})
	require.NoError(t, err)
	require.Equal(t, "Acme", vendor.Name)
	require.Equal(t, "Acme Holdings", vendor.Company)
	require.Equal(t, "sales@acme.test", vendor.Email)
}

func TestVendorServiceUpdateTrimsEmailBeforeValidation(t *testing.T) {
	repo := newFakeVendorRepo(models.Vendor{ID: "v1", Name: "Acme"})
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	email := " sales@acme.test "
	vendor, err := svc.Update(context.Background(), "v1", dto.VendorUpdateRequest{Email: &email})
	require.NoError(t, err)
	require.Equal(t, "sales@acme.test", vendor.Email)
	require.Equal(t, "sales@acme.test", repo.vendors["v1"].Email)
}

func TestVendorServiceDeleteInvalidatesScoreCache(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	cache := redis.NewClient(&redis.Options{Addr: server.Addr()})
	require.NoError(t, cache.Set(context.Background(), reportCacheKey("v1"), "stale", 0).Err())
	require.NoError(t, cache.Set(context.Background(), reportCacheKey("v2"), "fresh", 0).Err())

	repo := newFakeVendorRepo(models.Vendor{ID: "v1", Name: "Acme"})
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, cache, testLogger())

	require.NoError(t, svc.Delete(context.Background(), "v1"))
	require.False(t, server.Exists(reportCacheKey("v1")), "deleting a vendor must drop its cached summary")
	require.True(t, server.Exists(reportCacheKey("v2")), "other vendors' summaries stay cached")
}

func TestVendorServiceUpdateRejectsBlankName(t *testing.T) {
	repo := newFakeVendorRepo(models.Vendor{ID: "v1", Name: "Acme"})
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	blank := "  "
	_, err := svc.Update(context.Background(), "v1", dto.VendorUpdateRequest{Name: &blank})
	require.ErrorIs(t, err, ErrVendorNameRequired)
	require.Equal(t, "Acme", repo.vendors["v1"].Name)
}

func TestVendorServiceGetUnknownVendor(t *testing.T) {
	repo := newFakeVendorRepo()
	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVendorService(repo, validate, nil, testLogger())

	_, err := svc.Get(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrVendorNotFound)

	err = svc.Delete(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrVendorNotFound)
}
