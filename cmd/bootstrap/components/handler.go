package components

import (
	"bundlestay/internal/handler"
	"bundlestay/internal/handler/api"
	"bundlestay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPackageHandler,
		api.NewBookingHandler,
		api.NewBundleHandler,
		api.NewDashboardHandler,
		api.NewUploadHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	pkg *api.PackageHandler,
	booking *api.BookingHandler,
	bundle *api.BundleHandler,
	dashboard *api.DashboardHandler,
	upload *api.UploadHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:      auth,
		Package:   pkg,
		Booking:   booking,
		Bundle:    bundle,
		Dashboard: dashboard,
		Upload:    upload,
	}
}
