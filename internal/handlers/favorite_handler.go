package handlers

import (
	"net/http"

	"havjob/internal/auth"
	"havjob/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type FavoriteHandlerParams struct {
	fx.In

	FavoriteService services.FavoriteService
	Logger          *zap.Logger
}

type FavoriteHandler struct {
	favoriteService services.FavoriteService
	logger          *zap.Logger
}

func NewFavoriteHandler(p FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: p.FavoriteService,
		logger:          p.Logger,
	}
}

// ListMine handles GET /api/users/me/favorites.
func (h *FavoriteHandler) ListMine(c *gin.Context) {
	favorites, err := h.favoriteService.ListByUser(auth.IdentityFrom(c).UserID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// Add handles POST /api/missions/:id/favorite.
func (h *FavoriteHandler) Add(c *gin.Context) {
	favorite, err := h.favoriteService.Add(auth.IdentityFrom(c).UserID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// Remove handles DELETE /api/missions/:id/favorite.
func (h *FavoriteHandler) Remove(c *gin.Context) {
	if err := h.favoriteService.Remove(auth.IdentityFrom(c).UserID, c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// IsFavorite handles GET /api/missions/:id/is-favorite.
func (h *FavoriteHandler) IsFavorite(c *gin.Context) {
	isFavorite, err := h.favoriteService.IsFavorite(auth.IdentityFrom(c).UserID, c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isFavorite": isFavorite})
}
