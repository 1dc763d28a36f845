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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupFavoriteTest() (*mocks.FavoriteService, *handlers.FavoriteHandler) {
	mockFavoriteService := new(mocks.FavoriteService)
	favoriteHandler := handlers.NewFavoriteHandler(mockFavoriteService)

	return mockFavoriteService, favoriteHandler
}

func TestAddFavoriteHandler(t *testing.T) {
	favoriteBody := func() *bytes.Buffer {
		body, _ := json.Marshal(models.AddFavoriteRequest{ProductID: 7})
		return bytes.NewBuffer(body)
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockFavoriteService, favoriteHandler := setupFavoriteTest()
		userID := uuid.New()

		req := testutils.CreateTestRequestWithContext("POST", "/favorites", favoriteBody(), userID, nil)
		recorder := httptest.NewRecorder()

		mockFavorite := &models.Favorite{ID: uuid.New(), UserID: userID, ProductID: 7}
		mockFavoriteService.On("AddFavorite", mock.Anything, mock.Anything, mock.MatchedBy(func(r *models.AddFavoriteRequest) bool {
			return r.ProductID == 7
		})).Return(mockFavorite, nil).Once()

		// Act
		favoriteHandler.AddFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockFavoriteService.AssertExpectations(t)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		// Arrange
		_, favoriteHandler := setupFavoriteTest()

		req := testutils.CreateTestRequestWithoutContext("POST", "/favorites", favoriteBody(), nil)
		recorder := httptest.NewRecorder()

		// Act
		favoriteHandler.AddFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Failure - Already In Favorites", func(t *testing.T) {
		// Arrange
		mockFavoriteService, favoriteHandler := setupFavoriteTest()

		req := testutils.CreateTestRequestWithContext("POST", "/favorites", favoriteBody(), uuid.New(), nil)
		recorder := httptest.NewRecorder()

		mockError := appErrors.DuplicateEntryError("Product already in favorites")
		mockFavoriteService.On("AddFavorite", mock.Anything, mock.Anything, mock.Anything).Return(nil, mockError).Once()

		// Act
		favoriteHandler.AddFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, appErrors.ErrCodeDuplicateEntry, resp.Error.Code)

		mockFavoriteService.AssertExpectations(t)
	})
}

func TestListFavoritesHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockFavoriteService, favoriteHandler := setupFavoriteTest()
		userID := uuid.New()

		req := testutils.CreateTestRequestWithContext("GET", "/favorites", nil, userID, nil)
		recorder := httptest.NewRecorder()

		mockFavorites := []models.Favorite{
			{ID: uuid.New(), UserID: userID, ProductID: 7},
			{ID: uuid.New(), UserID: userID, ProductID: 12},
		}
		mockFavoriteService.On("ListFavorites", mock.Anything, mock.Anything).Return(mockFavorites, nil).Once()

		// Act
		favoriteHandler.ListFavorites()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp *response.APIResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.True(t, resp.Success)

		mockFavoriteService.AssertExpectations(t)
	})
}

func TestRemoveFavoriteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockFavoriteService, favoriteHandler := setupFavoriteTest()
		favoriteID := uuid.New()

		req := testutils.CreateTestRequestWithContext("DELETE", "/favorites/"+favoriteID.String(), nil, uuid.New(),
			map[string]string{"id": favoriteID.String()})
		recorder := httptest.NewRecorder()

		mockFavoriteService.On("RemoveFavorite", mock.Anything, mock.Anything, favoriteID).Return(nil).Once()

		// Act
		favoriteHandler.RemoveFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		mockFavoriteService.AssertExpectations(t)
	})

	t.Run("Failure - Forbidden", func(t *testing.T) {
		// Arrange
		mockFavoriteService, favoriteHandler := setupFavoriteTest()
		favoriteID := uuid.New()

		req := testutils.CreateTestRequestWithContext("DELETE", "/favorites/"+favoriteID.String(), nil, uuid.New(),
			map[string]string{"id": favoriteID.String()})
		recorder := httptest.NewRecorder()

		mockError := appErrors.ForbiddenError("You don't have permission to remove this favorite")
		mockFavoriteService.On("RemoveFavorite", mock.Anything, mock.Anything, favoriteID).Return(mockError).Once()

		// Act
		favoriteHandler.RemoveFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)

		mockFavoriteService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		_, favoriteHandler := setupFavoriteTest()

		req := testutils.CreateTestRequestWithContext("DELETE", "/favorites/not-a-uuid", nil, uuid.New(),
			map[string]string{"id": "not-a-uuid"})
		recorder := httptest.NewRecorder()

		// Act
		favoriteHandler.RemoveFavorite()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
