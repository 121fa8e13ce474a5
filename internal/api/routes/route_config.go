package routes

import (
	"Relief-Ops-Console/domain"
	"Relief-Ops-Console/internal/api/handlers"
	"Relief-Ops-Console/internal/middleware"
	"Relief-Ops-Console/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	DisasterHandler   handlers.DisasterHandler
	RequestHandler    handlers.RequestHandler
	AllocationHandler handlers.AllocationHandler
	ResourceHandler   handlers.ResourceHandler
	StorageHandler    handlers.StorageHandler
	VolunteerHandler  handlers.VolunteerHandler
	LogisticsHandler  handlers.LogisticsHandler
	AnalyticsHandler  handlers.AnalyticsHandler
	HealthHandler     handlers.HealthHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Access()
	c.Disasters()
	c.DemandRequests()
	c.Allocations()
	c.Resources()
	c.StorageLocations()
	c.Volunteers()
	c.Logistics()
	c.Analytics()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/api/v1/health", c.HealthHandler.Check)
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Access() {
	access := c.App.Group(
		"/api/v1/access",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdministrator),
	)
	{
		access.Get("/roles", c.UserHandler.GetRoles)
		access.Post("/roles", c.UserHandler.CreateRole)
		access.Get("/users", c.UserHandler.GetUsers)
		access.Post("/users", c.UserHandler.CreateUser)
		access.Patch("/users/:id/role", c.UserHandler.ReassignRole)
	}
}

func (c *Config) Disasters() {
	disasters := c.App.Group("/api/v1/disasters", c.Middleware.AuthMiddleware(c.JWTService))
	{
		disasters.Get("", c.DisasterHandler.GetDisasters)
		disasters.Post("",
			c.Middleware.RoleMiddleware(domain.RoleAdministrator, domain.RoleFieldCoordinator),
			c.DisasterHandler.CreateDisaster)
		disasters.Patch("/:id/severity",
			c.Middleware.RoleMiddleware(domain.RoleAdministrator, domain.RoleFieldCoordinator),
			c.DisasterHandler.UpdateSeverity)
		disasters.Put("/:id/location", c.DisasterHandler.SetLocation)
	}
}

func (c *Config) DemandRequests() {
	requests := c.App.Group("/api/v1/demand-requests", c.Middleware.AuthMiddleware(c.JWTService))
	{
		requests.Get("", c.RequestHandler.GetRequests)
		requests.Post("", c.RequestHandler.CreateRequest)
		requests.Patch("/:id/status", c.RequestHandler.UpdateRequestStatus)
		requests.Delete("/:id", c.RequestHandler.DeleteRequest)
		requests.Get("/:id/recommendations", c.RequestHandler.GetRecommendations)
	}
}

func (c *Config) Allocations() {
	allocations := c.App.Group("/api/v1/allocations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		allocations.Get("", c.AllocationHandler.GetAllocations)
		allocations.Post("", c.AllocationHandler.Allocate)
		allocations.Patch("/:id/status", c.AllocationHandler.UpdateAllocationStatus)
		allocations.Get("/logs", c.AllocationHandler.GetAllocationLogs)
	}
}

func (c *Config) Resources() {
	resources := c.App.Group("/api/v1/resources", c.Middleware.AuthMiddleware(c.JWTService))
	{
		resources.Get("", c.ResourceHandler.GetResources)
		resources.Post("", c.ResourceHandler.CreateResource)
		resources.Get("/low-stock", c.ResourceHandler.GetLowStock)
		resources.Put("/:id", c.ResourceHandler.UpdateResource)
		resources.Post("/:id/replenish", c.ResourceHandler.Replenish)
	}
}

func (c *Config) StorageLocations() {
	locations := c.App.Group("/api/v1/storage-locations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		locations.Get("", c.StorageHandler.GetStorageLocations)
		locations.Post("", c.StorageHandler.CreateStorageLocation)
		locations.Delete("/:id", c.StorageHandler.DeleteStorageLocation)
	}
}

func (c *Config) Volunteers() {
	volunteers := c.App.Group("/api/v1/volunteers", c.Middleware.AuthMiddleware(c.JWTService))
	{
		volunteers.Get("", c.VolunteerHandler.GetRoster)
		volunteers.Post("", c.VolunteerHandler.CreateVolunteer)
		volunteers.Post("/assign", c.VolunteerHandler.Assign)
		volunteers.Post("/auto-assign", c.VolunteerHandler.Assign)
		volunteers.Get("/assignments", c.VolunteerHandler.GetAssignments)
		volunteers.Patch("/assignments/:id/status", c.VolunteerHandler.UpdateAssignmentStatus)
		volunteers.Get("/:id/assignments", c.VolunteerHandler.GetVolunteerAssignments)
	}
}

func (c *Config) Logistics() {
	transports := c.App.Group("/api/v1/transports", c.Middleware.AuthMiddleware(c.JWTService))
	{
		transports.Get("", c.LogisticsHandler.GetTransports)
		transports.Post("", c.LogisticsHandler.CreateTransport)
		transports.Patch("/:id/status", c.LogisticsHandler.UpdateTransportStatus)
	}

	dispatches := c.App.Group("/api/v1/dispatches", c.Middleware.AuthMiddleware(c.JWTService))
	{
		dispatches.Get("", c.LogisticsHandler.GetDispatches)
		dispatches.Post("", c.LogisticsHandler.CreateDispatch)
		dispatches.Patch("/:id/status", c.LogisticsHandler.UpdateDispatchStatus)
	}
}

func (c *Config) Analytics() {
	analytics := c.App.Group("/api/v1/analytics", c.Middleware.AuthMiddleware(c.JWTService))
	{
		analytics.Get("/summary", c.AnalyticsHandler.GetSummary)
		analytics.Get("/pending-by-disaster", c.AnalyticsHandler.GetPendingByDisaster)
		analytics.Get("/resource-utilization", c.AnalyticsHandler.GetResourceUtilization)
	}
}
