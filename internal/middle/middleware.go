package middle

import "go.uber.org/fx"

// Module provides all middlewares
var Module = fx.Module("middle",
	fx.Provide(
		NewIdentityMiddleware,
		NewAuditMiddleware,
	),
)
