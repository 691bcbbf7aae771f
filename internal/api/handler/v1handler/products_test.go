package v1handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"accounts/internal/catalog"
	"accounts/pkg/domain"
	"accounts/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListProducts(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	products := []domain.Product{*sampleProduct()}
	env.catalog.EXPECT().Products(gomock.Any(), uint(0), uint(20)).Return(products, int64(1), nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/products", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["items"], 1)
}

func TestListProducts_Unauthenticated(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/v1/products", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListProducts_Pagination(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))
	env.catalog.EXPECT().Products(gomock.Any(), uint(10), uint(5)).Return([]domain.Product{}, int64(0), nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/products?page=3&pageSize=5", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, 3, body["page"])
	require.EqualValues(t, 5, body["pageSize"])
	require.NotNil(t, body["items"], "items must be an array even when empty")
}

func TestListProducts_PageSizeClamped(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))
	env.catalog.EXPECT().Products(gomock.Any(), uint(0), uint(100)).Return([]domain.Product{}, int64(0), nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/products?pageSize=5000", ""))
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 100, decodeBody(t, rec)["pageSize"])
}

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	product := sampleProduct()
	env.catalog.EXPECT().Product(gomock.Any(), product.ID).Return(product, nil)

	rec := env.do(authedRequest(http.MethodGet, "/v1/products/"+product.ID.String(), ""))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, product.ID.String(), body["id"])
	require.EqualValues(t, 12500, body["priceCents"])
}

func TestGetProduct_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	product := sampleProduct()
	env.catalog.EXPECT().
		Product(gomock.Any(), product.ID).
		Return(nil, serrors.With(serrors.ErrNotFound, "product not found"))

	rec := env.do(authedRequest(http.MethodGet, "/v1/products/"+product.ID.String(), ""))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProduct_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	rec := env.do(authedRequest(http.MethodGet, "/v1/products/nope", ""))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct_Superuser(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(true))

	product := sampleProduct()
	env.catalog.EXPECT().
		Create(gomock.Any(), "Keyboard", "A mechanical keyboard", int64(12500)).
		Return(product, nil)

	rec := env.do(authedRequest(http.MethodPost, "/v1/products",
		`{"name":"Keyboard","description":"A mechanical keyboard","priceCents":12500}`))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, product.ID.String(), decodeBody(t, rec)["id"])
}

func TestCreateProduct_NonSuperuserForbidden(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))

	rec := env.do(authedRequest(http.MethodPost, "/v1/products", `{"name":"Keyboard","priceCents":100}`))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(true))

	product := sampleProduct()
	product.PriceCents = 9900
	env.catalog.EXPECT().
		Update(gomock.Any(), product.ID, gomock.AssignableToTypeOf(catalog.ProductUpdates{})).
		DoAndReturn(func(_ any, _ domain.ProductID, updates catalog.ProductUpdates) (*domain.Product, error) {
			require.NotNil(t, updates.PriceCents)
			require.EqualValues(t, 9900, *updates.PriceCents)
			require.Nil(t, updates.Name)

			return product, nil
		})

	rec := env.do(authedRequest(http.MethodPatch, "/v1/products/"+product.ID.String(), `{"priceCents":9900}`))
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 9900, decodeBody(t, rec)["priceCents"])
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(true))

	product := sampleProduct()
	env.catalog.EXPECT().Delete(gomock.Any(), product.ID).Return(nil)

	rec := env.do(authedRequest(http.MethodDelete, "/v1/products/"+product.ID.String(), ""))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestInternalErrorsAreGeneric(t *testing.T) {
	env := newTestEnv(t)

	env.expectAuth(sampleUser(false))
	env.catalog.EXPECT().
		Products(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, int64(0), errors.New("pq: connection refused"))

	rec := env.do(authedRequest(http.MethodGet, "/v1/products", ""))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, "internal server error", decodeBody(t, rec)["error"])
	require.NotContains(t, rec.Body.String(), "connection refused")
}
