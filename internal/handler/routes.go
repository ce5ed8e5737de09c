package handler

import (
	"github.com/gin-gonic/gin"

	"clinic-booking-api/internal/middleware"
	"clinic-booking-api/internal/model"
)

func Routes(r *gin.Engine, h *Handler, secret string, rl *middleware.RateLimiter) {
	r.POST("/signup", middleware.RateLimit(rl), h.Signup)
	r.POST("/login", middleware.RateLimit(rl), h.Login)
	r.GET("/doctors", h.ListDoctors)

	authed := r.Group("", middleware.Authenticate(secret))
	{
		authed.GET("/appointments", h.ListAppointments)
		authed.GET("/appointments/:id/treatment", h.ViewTreatment)
	}

	patient := r.Group("", middleware.Authenticate(secret), middleware.RequireRole(model.RolePatient))
	{
		patient.POST("/appointments", h.BookAppointment)
		patient.PUT("/appointments/:id", h.EditAppointment)
		patient.POST("/appointments/:id/cancel", h.CancelAppointment)
	}

	doctor := r.Group("/doctor", middleware.Authenticate(secret), middleware.RequireRole(model.RoleDoctor))
	{
		doctor.GET("/availability", h.WeekAvailability)
		doctor.PUT("/availability", h.UpdateAvailability)
		doctor.POST("/appointments/:id/treatment", h.AddTreatment)
	}

	admin := r.Group("/admin", middleware.Authenticate(secret), middleware.RequireRole(model.RoleAdmin))
	{
		admin.GET("/patients", h.ListPatients)
		admin.DELETE("/patients/:id", h.DeletePatient)
		admin.POST("/doctors", h.CreateDoctor)
		admin.PUT("/doctors/:id", h.UpdateDoctor)
		admin.DELETE("/doctors/:id", h.DeleteDoctor)
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/audit", h.AuditLog)
	}
}
