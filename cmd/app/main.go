package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/gallery_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/cmd/fx/segment_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		memcache_fx.Module,
		segment_fx.Module,
		itinerary_fx.Module,
		gallery_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	segmentController *controllers.SegmentController,
	itineraryController *controllers.ItineraryController,
	galleryController *controllers.GalleryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, segmentController, itineraryController, galleryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	segmentController *controllers.SegmentController,
	itineraryController *controllers.ItineraryController,
	galleryController *controllers.GalleryController) {

	segmentsGroup := r.Group("/segments")
	segmentsGroup.POST("/segment-itinerary", segmentController.SegmentItinerary)

	itinerariesGroup := r.Group("/itineraries")
	itinerariesGroup.POST("/generate-itinerary", itineraryController.GenerateItinerary)
	itinerariesGroup.POST("/save-itinerary", itineraryController.SaveItinerary)
	itinerariesGroup.GET("/get-itinerary-by-id/:itineraryId", itineraryController.GetItineraryById)
	itinerariesGroup.GET("/get-itineraries-by-userid", itineraryController.GetItinerariesByUserId)
	itinerariesGroup.POST("/delete-itinerary/:itineraryId", itineraryController.DeleteItinerary)

	galleryGroup := r.Group("/gallery")
	galleryGroup.GET("/get-cover-for-segment", galleryController.GetCoverForSegment)
	galleryGroup.POST("/upsert-destination", galleryController.UpsertDestination)
}
