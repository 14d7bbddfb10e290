package ai_fx

import (
	"os"

	"go.uber.org/fx"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideItineraryClient)

func provideItineraryClient() (utils.ItineraryClientInterface, error) {
	return utils.NewItineraryClient(
		os.Getenv("AI_PROVIDER"),
		os.Getenv("AI_API_KEY"),
		os.Getenv("AI_MODEL"),
	)
}
