package router

import (
	"github.com/fleetops-api/internal/config"
	adminhandlers "github.com/fleetops-api/internal/http/handlers/admin"
	fleethandlers "github.com/fleetops-api/internal/http/handlers/fleet"
	"github.com/fleetops-api/internal/logger"
	"github.com/fleetops-api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and all API routes.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	fleetHandler := fleethandlers.New(c)
	adminHandler := adminhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{
			"service": "Fleet Logistics API",
			"version": "1.0.0",
			"docs":    "/api/v1",
		})
	})
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "healthy"})
	})

	apiV1 := r.Group("/api/v1")
	{
		organizations := apiV1.Group("/organizations")
		{
			organizations.GET("", fleetHandler.ListOrganizations)
			organizations.GET("/:id", fleetHandler.GetOrganization)
			organizations.POST("", fleetHandler.CreateOrganization)
			organizations.PUT("/:id", fleetHandler.UpdateOrganization)
			organizations.DELETE("/:id", fleetHandler.DeleteOrganization)
		}

		vehicles := apiV1.Group("/vehicles")
		{
			vehicles.GET("", fleetHandler.ListVehicles)
			vehicles.GET("/:id", fleetHandler.GetVehicle)
			vehicles.POST("", fleetHandler.CreateVehicle)
			vehicles.PUT("/:id", fleetHandler.UpdateVehicle)
			vehicles.DELETE("/:id", fleetHandler.DeleteVehicle)
		}

		drivers := apiV1.Group("/drivers")
		{
			drivers.GET("", fleetHandler.ListDrivers)
			drivers.GET("/:id", fleetHandler.GetDriver)
			drivers.POST("", fleetHandler.CreateDriver)
			drivers.PUT("/:id", fleetHandler.UpdateDriver)
			drivers.DELETE("/:id", fleetHandler.DeleteDriver)
		}

		locations := apiV1.Group("/locations")
		{
			locations.GET("", fleetHandler.ListLocations)
			locations.GET("/:id", fleetHandler.GetLocation)
			locations.POST("", fleetHandler.CreateLocation)
			locations.PUT("/:id", fleetHandler.UpdateLocation)
			locations.DELETE("/:id", fleetHandler.DeleteLocation)
		}

		routes := apiV1.Group("/routes")
		{
			routes.GET("", fleetHandler.ListRoutes)
			routes.GET("/:id", fleetHandler.GetRoute)
			routes.POST("", fleetHandler.CreateRoute)
			routes.PUT("/:id", fleetHandler.UpdateRoute)
			routes.DELETE("/:id", fleetHandler.DeleteRoute)
		}

		deliveries := apiV1.Group("/deliveries")
		{
			deliveries.GET("", fleetHandler.ListDeliveries)
			deliveries.GET("/tracking/:tracking_number", fleetHandler.GetDeliveryByTracking)
			deliveries.GET("/:id", fleetHandler.GetDelivery)
			deliveries.POST("", fleetHandler.CreateDelivery)
			deliveries.PUT("/:id", fleetHandler.UpdateDelivery)
			deliveries.DELETE("/:id", fleetHandler.DeleteDelivery)
		}

		maintenance := apiV1.Group("/maintenance")
		{
			maintenance.GET("", fleetHandler.ListMaintenance)
			maintenance.GET("/:id", fleetHandler.GetMaintenance)
			maintenance.POST("", fleetHandler.CreateMaintenance)
			maintenance.PUT("/:id", fleetHandler.UpdateMaintenance)
			maintenance.DELETE("/:id", fleetHandler.DeleteMaintenance)
		}

		fuel := apiV1.Group("/fuel")
		{
			fuel.GET("", fleetHandler.ListFuelLogs)
			fuel.GET("/:id", fleetHandler.GetFuelLog)
			fuel.POST("", fleetHandler.CreateFuelLog)
			fuel.PUT("/:id", fleetHandler.UpdateFuelLog)
			fuel.DELETE("/:id", fleetHandler.DeleteFuelLog)
		}

		incidents := apiV1.Group("/incidents")
		{
			incidents.GET("", fleetHandler.ListIncidents)
			incidents.GET("/:id", fleetHandler.GetIncident)
			incidents.POST("", fleetHandler.CreateIncident)
			incidents.PUT("/:id", fleetHandler.UpdateIncident)
			incidents.DELETE("/:id", fleetHandler.DeleteIncident)
		}

		gps := apiV1.Group("/gps")
		{
			gps.GET("", fleetHandler.ListGPS)
			gps.GET("/vehicle/:vehicle_id/latest", fleetHandler.GetLatestGPSForVehicle)
			gps.GET("/:id", fleetHandler.GetGPS)
			gps.POST("", fleetHandler.CreateGPS)
			gps.DELETE("/:id", fleetHandler.DeleteGPS)
		}

		admin := apiV1.Group("/admin")
		{
			admin.POST("/seed-full", adminHandler.SeedFull)
			admin.DELETE("/clear", adminHandler.ClearDatabase)
		}
	}

	return r
}
