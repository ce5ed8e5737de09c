package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
)

type treatmentRequest struct {
	Diagnosis    string `form:"diagnosis"`
	Prescription string `form:"prescription"`
	Notes        string `form:"notes"`
}

// AddTreatment records the treatment and completes the appointment in one
// atomic step. Only the assigned doctor may do this, and only while the
// appointment is still booked.
func (h *Handler) AddTreatment(c *gin.Context) {
	doctor, ok := h.doctorFor(c)
	if !ok {
		return
	}

	apt, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if apt.DoctorID != doctor.ID {
		notPermitted(c)
		return
	}

	var req treatmentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
		return
	}

	t := &model.Treatment{
		ID:            uuid.New().String(),
		AppointmentID: apt.ID,
		Diagnosis:     req.Diagnosis,
		Prescription:  req.Prescription,
		Notes:         req.Notes,
	}

	if err := h.store.CompleteWithTreatment(c.Request.Context(), t); err != nil {
		h.storeErr(c, err)
		return
	}

	h.audit(c, "Completed")
	c.JSON(http.StatusOK, gin.H{"message": "treatment saved, appointment marked as completed"})
}

// ViewTreatment is open to the owning patient and the assigned doctor only.
func (h *Handler) ViewTreatment(c *gin.Context) {
	apt, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeErr(c, err)
		return
	}

	switch role(c) {
	case model.RolePatient:
		if apt.PatientID != uid(c) {
			notPermitted(c)
			return
		}
	case model.RoleDoctor:
		doctor, ok := h.doctorFor(c)
		if !ok {
			return
		}
		if apt.DoctorID != doctor.ID {
			notPermitted(c)
			return
		}
	default:
		notPermitted(c)
		return
	}

	t, err := h.store.TreatmentByAppointment(c.Request.Context(), apt.ID)
	if err != nil {
		h.storeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"treatment": gin.H{
		"appointment_id": t.AppointmentID,
		"diagnosis":      t.Diagnosis,
		"prescription":   t.Prescription,
		"notes":          t.Notes,
	}})
}
