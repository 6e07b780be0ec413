package services

import "go.uber.org/fx"

// Module provides all services
var Module = fx.Module("services",
	fx.Provide(
		NewUserService,
		NewSessionService,
		NewMissionService,
		NewApplicationService,
		NewFavoriteService,
		NewReviewService,
		NewBoostService,
	),
)
