package segment_fx

import (
	"go.uber.org/fx"
	"voyago/internal/services"
)

var Module = fx.Provide(provideSegmentService)

func provideSegmentService() services.SegmentServiceInterface {
	return services.NewSegmentService()
}
