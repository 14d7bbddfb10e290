package controllers_fx

import (
	"go.uber.org/fx"
	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewSegmentController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewGalleryController))
