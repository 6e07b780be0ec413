package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

type HealthHandlerParams struct {
	fx.In

	Version string `name:"version"`
}

type HealthHandler struct {
	version string
}

func NewHealthHandler(p HealthHandlerParams) *HealthHandler {
	return &HealthHandler{version: p.Version}
}

func (h *HealthHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}
