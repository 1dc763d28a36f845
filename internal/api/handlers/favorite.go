package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopcore-labs/shopcore/internal/api/middleware"
	"github.com/shopcore-labs/shopcore/internal/errors"
	"github.com/shopcore-labs/shopcore/internal/models"
	service "github.com/shopcore-labs/shopcore/internal/services"
	"github.com/shopcore-labs/shopcore/internal/utils"
	"github.com/shopcore-labs/shopcore/internal/utils/response"
)

type FavoriteHandler struct {
	favoriteService service.FavoriteService
	validator       *validator.Validate
}

func NewFavoriteHandler(favoriteService service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService, validator: validator.New()}
}

func (h *FavoriteHandler) AddFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := claimsFromContext(r)
		if !ok {
			logger.Warn("Unauthorized favorite creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.AddFavoriteRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		favorite, err := h.favoriteService.AddFavorite(r.Context(), claims, &req)
		if err != nil {
			logger.Error("Failed to add favorite", slog.Int64("productId", req.ProductID), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusCreated, favorite)
	}
}

func (h *FavoriteHandler) ListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := claimsFromContext(r)
		if !ok {
			logger.Warn("Unauthorized favorite list attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		favorites, err := h.favoriteService.ListFavorites(r.Context(), claims)
		if err != nil {
			logger.Error("Failed to list favorites", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, favorites)
	}
}

func (h *FavoriteHandler) RemoveFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := claimsFromContext(r)
		if !ok {
			logger.Warn("Unauthorized favorite removal attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid favorite id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.favoriteService.RemoveFavorite(r.Context(), claims, id); err != nil {
			logger.Error("Failed to remove favorite", slog.String("favoriteId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
	}
}
