package handlers

import (
	"go.uber.org/fx"
)

// Module provides all handlers
var Module = fx.Module("handlers",
	fx.Provide(
		NewHealthHandler,
		NewAuthHandler,
		NewMobileHandler,
		NewMissionHandler,
		NewApplicationHandler,
		NewFavoriteHandler,
		NewReviewHandler,
		NewUserHandler,
		NewBoostHandler,
	),
)
