package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-api/internal/auth"
	"clinic-booking-api/internal/model"
)

const doctorsCacheKey = "doctors:roster"

type doctorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// ListDoctors is the public roster, cached when redis is configured.
func (h *Handler) ListDoctors(c *gin.Context) {
	if raw, ok := h.cache.Get(c.Request.Context(), doctorsCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(raw))
		return
	}

	doctors, err := h.store.ListDoctors(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}

	out := make([]doctorResponse, len(doctors))
	for i, d := range doctors {
		out[i] = doctorResponse{ID: d.ID, Name: d.Name, Email: d.Email, Department: d.Department}
	}
	body := gin.H{"doctors": out}

	if raw, err := json.Marshal(body); err == nil {
		h.cache.Set(c.Request.Context(), doctorsCacheKey, string(raw), 5*time.Minute)
	}
	c.JSON(http.StatusOK, body)
}

type patientResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.store.SearchPatients(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.storeErr(c, err)
		return
	}

	out := make([]patientResponse, len(patients))
	for i, p := range patients {
		out[i] = patientResponse{ID: p.ID, Username: p.Username, Email: p.Email}
	}
	c.JSON(http.StatusOK, gin.H{"patients": out})
}

func (h *Handler) DeletePatient(c *gin.Context) {
	if err := h.store.DeletePatient(c.Request.Context(), c.Param("id")); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "patient deleted"})
}

type createDoctorRequest struct {
	Name       string `form:"name" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Department string `form:"department" binding:"required"`
	Password   string `form:"password" binding:"required"`
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req createDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, department and password are required"})
		return
	}
	if len(req.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	login := &model.User{
		ID:           uuid.New().String(),
		Username:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	doctor := &model.Doctor{
		ID:         uuid.New().String(),
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
	}

	if err := h.store.CreateDoctor(c.Request.Context(), login, doctor); err != nil {
		h.storeErr(c, err)
		return
	}

	h.cache.Del(c.Request.Context(), doctorsCacheKey)
	c.JSON(http.StatusCreated, gin.H{
		"message":   "doctor profile and default schedule created",
		"doctor_id": doctor.ID,
	})
}

type updateDoctorRequest struct {
	Name       string `form:"name" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Department string `form:"department" binding:"required"`
	Password   string `form:"password"`
}

func (h *Handler) UpdateDoctor(c *gin.Context) {
	var req updateDoctorRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and department are required"})
		return
	}

	var hash string
	if req.Password != "" {
		if len(req.Password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password too short"})
			return
		}
		var err error
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
	}

	doctor := &model.Doctor{
		ID:         c.Param("id"),
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
	}

	if err := h.store.UpdateDoctor(c.Request.Context(), doctor, hash); err != nil {
		h.storeErr(c, err)
		return
	}

	h.cache.Del(c.Request.Context(), doctorsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "doctor profile updated"})
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.store.DeleteDoctor(c.Request.Context(), c.Param("id")); err != nil {
		h.storeErr(c, err)
		return
	}

	h.cache.Del(c.Request.Context(), doctorsCacheKey)
	c.JSON(http.StatusOK, gin.H{"message": "doctor profile and login deleted"})
}

func (h *Handler) Dashboard(c *gin.Context) {
	doctors, patients, appointments, err := h.store.Stats(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}

	apts, err := h.store.AllAppointments(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toResponse(&apts[i])
	}
	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"doctors":      doctors,
			"patients":     patients,
			"appointments": appointments,
		},
		"appointments": out,
	})
}

func (h *Handler) AuditLog(c *gin.Context) {
	events, err := h.store.ListAudit(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}

	type eventResponse struct {
		ActorID   string    `json:"actor_id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Action    string    `json:"action"`
		CreatedAt time.Time `json:"created_at"`
	}
	out := make([]eventResponse, len(events))
	for i, ev := range events {
		out[i] = eventResponse{ActorID: ev.ActorID, Email: ev.Email, Name: ev.Name,
			Action: ev.Action, CreatedAt: ev.CreatedAt}
	}
	c.JSON(http.StatusOK, gin.H{"events": out})
}
