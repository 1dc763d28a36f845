package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopcore-labs/shopcore/internal/api/handlers"
	appErrors "github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	"github.com/shopcore-labs/shopcore/internal/services/mocks"
	"github.com/shopcore-labs/shopcore/internal/testutils"
	"github.com/shopcore-labs/shopcore/internal/utils/response"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProductTest() (*mocks.ProductService, *handlers.ProductHandler) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	return mockProductService, productHandler
}

func TestCreateProduct(t *testing.T) {
	createBody := func() *bytes.Buffer {
		body, _ := json.Marshal(models.CreateProductRequest{
			Name:          "Widget",
			Description:   "A fine widget",
			Price:         decimal.NewFromFloat(19.99),
			StockQuantity: 50,
		})
		return bytes.NewBuffer(body)
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithRole("POST", "/products", createBody(), uuid.New(), models.RoleAdmin, nil)
		recorder := httptest.NewRecorder()

		mockProduct := &models.Product{ID: 1, Name: "Widget", Active: true}
		mockProductService.On("CreateProduct", mock.Anything, mock.Anything, mock.Anything).Return(mockProduct, nil).Once()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithoutContext("POST", "/products", createBody(), nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Failure - Forbidden For Customer", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithContext("POST", "/products", createBody(), uuid.New(), nil)
		recorder := httptest.NewRecorder()

		mockError := appErrors.ForbiddenError("Only administrators can manage the catalog")
		mockProductService.On("CreateProduct", mock.Anything, mock.Anything, mock.Anything).Return(nil, mockError).Once()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockProductService.AssertExpectations(t)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/7", nil,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockProduct := &models.Product{ID: 7, Name: "Widget", Active: true}
		mockProductService.On("GetProductByID", mock.Anything, int64(7)).Return(mockProduct, nil).Once()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/404", nil,
			map[string]string{"id": "404"})
		recorder := httptest.NewRecorder()

		mockError := appErrors.NotFoundError("Product not found")
		mockProductService.On("GetProductByID", mock.Anything, int64(404)).Return(nil, mockError).Once()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		_, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/abc", nil,
			map[string]string{"id": "abc"})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestRestockProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		body, _ := json.Marshal(models.RestockRequest{Quantity: 25})
		req := testutils.CreateTestRequestWithRole("POST", "/products/7/restock", bytes.NewBuffer(body), uuid.New(), models.RoleAdmin,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockProduct := &models.Product{ID: 7, StockQuantity: 33}
		mockProductService.On("Restock", mock.Anything, mock.Anything, int64(7), int64(25)).Return(mockProduct, nil).Once()

		// Act
		productHandler.Restock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Quantity", func(t *testing.T) {
		// Arrange
		_, productHandler := setupProductTest()

		body := []byte(`{"quantity": -5}`)
		req := testutils.CreateTestRequestWithRole("POST", "/products/7/restock", bytes.NewBuffer(body), uuid.New(), models.RoleAdmin,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.Restock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithRole("DELETE", "/products/7", nil, uuid.New(), models.RoleAdmin,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockProductService.On("DeleteProduct", mock.Anything, mock.Anything, int64(7)).Return(nil).Once()

		// Act
		productHandler.DeleteProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Referenced By Orders", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithRole("DELETE", "/products/7", nil, uuid.New(), models.RoleAdmin,
			map[string]string{"id": "7"})
		recorder := httptest.NewRecorder()

		mockError := appErrors.ConflictError("Product is referenced by existing orders")
		mockProductService.On("DeleteProduct", mock.Anything, mock.Anything, int64(7)).Return(mockError).Once()

		// Act
		productHandler.DeleteProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)

		mockProductService.AssertExpectations(t)
	})
}

func TestListProducts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products?page=1&pageSize=20", nil, nil)
		recorder := httptest.NewRecorder()

		mockProducts := []*models.Product{{ID: 1, Name: "Widget"}, {ID: 2, Name: "Gadget"}}
		mockProductService.On("ListProducts", mock.Anything, 1, 20).Return(mockProducts, 2, nil).Once()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockProductService.AssertExpectations(t)
	})
}
