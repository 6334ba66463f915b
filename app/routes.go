package main

import (
	"net/http"

	"gymsphere/config"
	"gymsphere/delivery"
	"gymsphere/domain"
	"gymsphere/middleware"

	"github.com/gin-gonic/gin"
)

func registerRoutes(
	app *gin.Engine,
	authService domain.AuthUseCase,
	userService domain.UserUseCase,
	trainerService domain.TrainerUseCase,
	classService domain.ClassUseCase,
	scheduleService domain.ScheduleUseCase,
	enrollmentService domain.EnrollmentUseCase,
) {
	authHandler := delivery.NewAuthHandler(authService)
	userHandler := delivery.NewUserHandler(userService)
	trainerHandler := delivery.NewTrainerHandler(trainerService)
	classHandler := delivery.NewClassHandler(classService)
	scheduleHandler := delivery.NewScheduleHandler(scheduleService)
	enrollmentHandler := delivery.NewEnrollmentHandler(enrollmentService)

	authRequired := config.AuthMiddleware(authService.GetAccessTokenManager())

	// The limiter sits behind auth on protected groups so user-scoped rules
	// key on the authenticated account; the auth group keys on IP.
	limited := middleware.RateLimiter()

	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := app.Group("/auth", limited)
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authRequired, authHandler.Logout)
		auth.GET("/me", authRequired, authHandler.Me)
		auth.PUT("/change-password", authRequired, authHandler.ChangePassword)
	}

	// User management is admin territory.
	users := app.Group("/users", authRequired, limited, middleware.AdminOnly())
	{
		users.POST("", userHandler.Create)
		users.GET("", userHandler.List)
		users.GET("/:uuid", userHandler.GetByUUID)
		users.PUT("/:uuid", userHandler.Update)
		users.DELETE("/:uuid", userHandler.Delete)
	}

	trainers := app.Group("/trainers", authRequired, limited)
	{
		trainers.GET("", trainerHandler.List)
		trainers.GET("/:id", trainerHandler.GetByID)
		trainers.POST("", middleware.AdminOnly(), trainerHandler.Create)
		trainers.PUT("/:id", middleware.AdminOnly(), trainerHandler.Update)
		trainers.DELETE("/:id", middleware.AdminOnly(), trainerHandler.Delete)
	}

	// Member-to-trainer assignments, managed by the front desk.
	assignments := app.Group("/assignments", authRequired, limited, middleware.StaffOnly())
	{
		assignments.GET("", trainerHandler.ListAssignments)
		assignments.POST("", trainerHandler.CreateAssignment)
	}

	classes := app.Group("/classes", authRequired, limited)
	{
		classes.GET("", classHandler.List)
		classes.GET("/:id", classHandler.GetByID)
		classes.POST("", middleware.AdminOnly(), classHandler.Create)
		classes.PUT("/:id", middleware.AdminOnly(), classHandler.Update)
		classes.DELETE("/:id", middleware.AdminOnly(), classHandler.Delete)
	}

	schedules := app.Group("/schedules", authRequired, limited)
	{
		schedules.GET("", scheduleHandler.List)
		schedules.GET("/:id", scheduleHandler.GetByID)
		schedules.POST("", middleware.StaffOnly(), scheduleHandler.Create)
		schedules.GET("/:id/roster", middleware.StaffOnly(), scheduleHandler.Roster)
		schedules.PUT("/:id/start", middleware.StaffOnly(), scheduleHandler.Start)
		schedules.PUT("/:id/complete", middleware.StaffOnly(), scheduleHandler.Complete)
		schedules.PUT("/:id/cancel", middleware.StaffOnly(), scheduleHandler.Cancel)
	}

	enrollments := app.Group("/enrollments", authRequired, limited)
	{
		// Members book themselves; staff book a member in from the desk.
		enrollments.POST("", enrollmentHandler.Enroll)
		enrollments.GET("/mine", middleware.MemberOnly(), enrollmentHandler.ListMine)
		enrollments.PUT("/:id/cancel", enrollmentHandler.Cancel)
		enrollments.PUT("/:id/rate", middleware.MemberOnly(), enrollmentHandler.Rate)
		enrollments.PUT("/:id/complete", middleware.StaffOnly(), enrollmentHandler.Complete)
		enrollments.PUT("/:id/no-show", middleware.StaffOnly(), enrollmentHandler.MarkNoShow)
	}

	app.GET("/admin/rate-limits", authRequired, limited, middleware.RateLimitStatusHandler)
}
