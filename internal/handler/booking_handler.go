package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/schedule"
	"clinic-booking-api/internal/store"
)

type bookRequest struct {
	DoctorID string `form:"doctor_id" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Time     string `form:"time" binding:"required"`
	Disease  string `form:"disease"`
}

type appointmentResponse struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Disease   string `json:"disease"`
	Status    string `json:"status"`
}

func toResponse(a *model.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:        a.ID,
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		Date:      a.Date.Format(schedule.DateLayout),
		Time:      a.Time,
		Disease:   a.Disease,
		Status:    a.Status,
	}
}

func (h *Handler) BookAppointment(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "doctor_id, date and time are required"})
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}
	day := schedule.DayName(date)

	doctor, err := h.store.DoctorByID(c.Request.Context(), req.DoctorID)
	if err != nil {
		h.storeErr(c, err)
		return
	}

	window, err := h.store.DayWindow(c.Request.Context(), doctor.ID, day)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.storeErr(c, err)
		return
	}

	var start, end *string
	if window != nil {
		start, end = window.StartTime, window.EndTime
	}
	switch err := schedule.Bookable(start, end, req.Time); {
	case errors.Is(err, schedule.ErrBadClock):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format, expected HH:MM"})
		return
	case errors.Is(err, schedule.ErrDayOff):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"Dr. %s is not available on %ss, please select a different day", doctor.Name, day)})
		return
	case errors.Is(err, schedule.ErrOutsideHours):
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf(
			"the selected time %s is outside Dr. %s's hours (%s - %s) on %ss",
			req.Time, doctor.Name, *start, *end, day)})
		return
	}

	taken, err := h.store.SlotTaken(c.Request.Context(), doctor.ID, date, req.Time, "")
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if taken {
		h.storeErr(c, store.ErrSlotTaken)
		return
	}

	apt := &model.Appointment{
		ID:        uuid.New().String(),
		PatientID: uid(c),
		DoctorID:  doctor.ID,
		Date:      date,
		Time:      req.Time,
		Disease:   req.Disease,
		Status:    model.StatusBooked,
	}

	if err := h.store.CreateAppointment(c.Request.Context(), apt); err != nil {
		h.storeErr(c, err)
		return
	}

	h.audit(c, "Booked")
	if u, err := h.store.UserByID(c.Request.Context(), apt.PatientID); err == nil {
		if err := h.mailer.SendBookingConfirmation(u.Email, doctor.Name, req.Date, req.Time); err != nil {
			h.log.WithError(err).Warn("booking confirmation mail failed")
		}
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "booking confirmed",
		"appointment": toResponse(apt),
	})
}

func (h *Handler) ListAppointments(c *gin.Context) {
	var (
		apts []model.Appointment
		err  error
	)
	switch role(c) {
	case model.RoleDoctor:
		doctor, ok := h.doctorFor(c)
		if !ok {
			return
		}
		apts, err = h.store.AppointmentsForDoctor(c.Request.Context(), doctor.ID)
	case model.RoleAdmin:
		apts, err = h.store.AllAppointments(c.Request.Context())
	default:
		apts, err = h.store.AppointmentsForPatient(c.Request.Context(), uid(c))
	}
	if err != nil {
		h.storeErr(c, err)
		return
	}

	out := make([]appointmentResponse, len(apts))
	for i := range apts {
		out[i] = toResponse(&apts[i])
	}
	c.JSON(http.StatusOK, gin.H{"appointments": out})
}

type editRequest struct {
	Date    string `form:"date" binding:"required"`
	Time    string `form:"time" binding:"required"`
	Disease string `form:"disease"`
}

func (h *Handler) EditAppointment(c *gin.Context) {
	apt, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if apt.PatientID != uid(c) {
		notPermitted(c)
		return
	}

	var req editRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and time are required"})
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return
	}
	if !schedule.ValidClock(req.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time format, expected HH:MM"})
		return
	}

	// exclude self from the conflict check
	taken, err := h.store.SlotTaken(c.Request.Context(), apt.DoctorID, date, req.Time, apt.ID)
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if taken {
		h.storeErr(c, store.ErrSlotTaken)
		return
	}

	apt.Date = date
	apt.Time = req.Time
	apt.Disease = req.Disease

	if err := h.store.UpdateAppointment(c.Request.Context(), apt); err != nil {
		h.storeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "appointment updated",
		"appointment": toResponse(apt),
	})
}

func (h *Handler) CancelAppointment(c *gin.Context) {
	apt, err := h.store.GetAppointment(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if apt.PatientID != uid(c) {
		notPermitted(c)
		return
	}

	if apt.Status == model.StatusCancelled {
		c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
		return
	}

	if err := h.store.CancelAppointment(c.Request.Context(), apt.ID); err != nil {
		h.storeErr(c, err)
		return
	}

	h.audit(c, "Cancelled")
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}
