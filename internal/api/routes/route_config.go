package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/haidar-allaw/red-cross-sub000/domain"
	"github.com/haidar-allaw/red-cross-sub000/internal/api/handlers"
	"github.com/haidar-allaw/red-cross-sub000/internal/middleware"
	"github.com/haidar-allaw/red-cross-sub000/pkg/jwt"
)

type Config struct {
	App                  *fiber.App
	UserHandler          handlers.UserHandler
	MedicalCenterHandler handlers.MedicalCenterHandler
	BloodEntryHandler    handlers.BloodEntryHandler
	BloodRequestHandler  handlers.BloodRequestHandler
	NotificationHandler  handlers.NotificationHandler
	LocationHandler      handlers.LocationHandler
	ReportHandler        handlers.ReportHandler
	Middleware           middleware.Middleware
	JWTService           jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.MedicalCenter()
	c.BloodEntry()
	c.BloodRequest()
	c.Notification()
	c.Location()
	c.Admin()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService)
}

func (c *Config) role(roles ...string) fiber.Handler {
	return c.Middleware.RoleMiddleware(roles...)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/users")
	{
		user.Post("/signup", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.auth(), c.role(domain.RoleUser, domain.RoleAdmin), c.UserHandler.Me)
		user.Patch("/me", c.auth(), c.role(domain.RoleUser, domain.RoleAdmin), c.UserHandler.UpdateUser)
		user.Post("/me/picture", c.auth(), c.role(domain.RoleUser, domain.RoleAdmin), c.UserHandler.UploadProfilePicture)

		user.Get("/", c.auth(), c.role(domain.RoleAdmin), c.UserHandler.GetUsers)
		user.Get("/:id", c.auth(), c.role(domain.RoleAdmin), c.UserHandler.GetUserByID)
		user.Delete("/:id", c.auth(), c.role(domain.RoleAdmin), c.UserHandler.DeleteUser)
	}
}

func (c *Config) MedicalCenter() {
	center := c.App.Group("/api/medicalCenters")
	{
		center.Post("/signup", c.MedicalCenterHandler.Register)
		center.Post("/login", c.MedicalCenterHandler.Login)
		center.Get("/", c.MedicalCenterHandler.GetMedicalCenters)

		// static paths before /:id
		center.Get("/pending", c.auth(), c.role(domain.RoleAdmin), c.MedicalCenterHandler.GetPendingMedicalCenters)
		center.Get("/me", c.auth(), c.role(domain.RoleCenter), c.MedicalCenterHandler.Me)
		center.Patch("/me", c.auth(), c.role(domain.RoleCenter), c.MedicalCenterHandler.UpdateMedicalCenter)
		center.Patch("/me/inventory", c.auth(), c.role(domain.RoleCenter), c.MedicalCenterHandler.UpdateInventory)
		center.Post("/me/image", c.auth(), c.role(domain.RoleCenter), c.MedicalCenterHandler.UploadImage)

		center.Get("/:id", c.MedicalCenterHandler.GetMedicalCenterByID)
		center.Patch("/:id/approve", c.auth(), c.role(domain.RoleAdmin), c.MedicalCenterHandler.ApproveMedicalCenter)
		center.Delete("/:id", c.auth(), c.role(domain.RoleAdmin), c.MedicalCenterHandler.DeleteMedicalCenter)
	}
}

func (c *Config) BloodEntry() {
	entries := c.App.Group("/api/bloodEntries", c.auth())
	{
		entries.Post("/", c.role(domain.RoleUser), c.BloodEntryHandler.CreateBloodEntry)
		entries.Get("/me", c.role(domain.RoleUser), c.BloodEntryHandler.GetUserBloodEntries)
		entries.Get("/center", c.role(domain.RoleCenter), c.BloodEntryHandler.GetCenterBloodEntries)
		entries.Get("/:id", c.BloodEntryHandler.GetBloodEntryByID)
		entries.Patch("/:id/status", c.BloodEntryHandler.UpdateBloodEntryStatus)
		entries.Delete("/:id", c.role(domain.RoleAdmin), c.BloodEntryHandler.DeleteBloodEntry)
	}
}

func (c *Config) BloodRequest() {
	requests := c.App.Group("/api/bloodRequests")
	{
		requests.Post("/create", c.BloodRequestHandler.CreateBloodRequest)
		requests.Get("/getAll", c.BloodRequestHandler.GetBloodRequests)
		requests.Get("/center/:centerId", c.BloodRequestHandler.GetBloodRequestsByCenter)
		requests.Patch("/:id/approve", c.auth(), c.role(domain.RoleCenter, domain.RoleAdmin), c.BloodRequestHandler.ApproveBloodRequest)
		requests.Patch("/:id/reject", c.auth(), c.role(domain.RoleCenter, domain.RoleAdmin), c.BloodRequestHandler.RejectBloodRequest)
		requests.Delete("/:id", c.auth(), c.role(domain.RoleAdmin), c.BloodRequestHandler.DeleteBloodRequest)
	}
}

func (c *Config) Notification() {
	notifications := c.App.Group("/api/notifications", c.auth())
	{
		notifications.Get("/", c.NotificationHandler.GetNotifications)
		notifications.Patch("/read-all", c.NotificationHandler.MarkAllAsRead)
		notifications.Patch("/:id/read", c.NotificationHandler.MarkAsRead)
		notifications.Delete("/", c.NotificationHandler.ClearNotifications)
		notifications.Delete("/:id", c.NotificationHandler.DeleteNotification)
	}
}

func (c *Config) Location() {
	locations := c.App.Group("/api/locations")
	{
		locations.Post("/", c.auth(), c.LocationHandler.CreateLocation)
		locations.Get("/", c.LocationHandler.GetLocations)
		locations.Get("/:id", c.LocationHandler.GetLocationByID)
		locations.Delete("/:id", c.auth(), c.role(domain.RoleAdmin), c.LocationHandler.DeleteLocation)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin", c.auth(), c.role(domain.RoleAdmin))
	admin.Get("/stats", c.ReportHandler.GetStatistics)
}
