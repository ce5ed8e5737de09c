package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clinic-booking-api/internal/cache"
	"clinic-booking-api/internal/mail"
	"clinic-booking-api/internal/middleware"
	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/store"
)

type Handler struct {
	store  *store.Store
	cache  *cache.Cache
	mailer *mail.Mailer
	log    *logrus.Logger
	secret string
}

func New(st *store.Store, c *cache.Cache, m *mail.Mailer, log *logrus.Logger, secret string) *Handler {
	return &Handler{store: st, cache: c, mailer: m, log: log, secret: secret}
}

func uid(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

func role(c *gin.Context) string {
	return c.GetString(middleware.RoleKey)
}

// storeErr maps store sentinels onto the response taxonomy: validation and
// conflict failures carry a message, anything unexpected is a generic 500.
func (h *Handler) storeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "that time slot is already booked, please choose another"})
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "a user with this email already exists"})
	case errors.Is(err, store.ErrHasAppointments):
		c.JSON(http.StatusConflict, gin.H{"error": "cannot delete: existing appointments reference this record"})
	case errors.Is(err, store.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": "appointment is not in a state that allows this"})
	default:
		h.log.WithError(err).Error("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func notPermitted(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
}

// doctorFor resolves the doctor profile behind the logged-in doctor's login.
func (h *Handler) doctorFor(c *gin.Context) (*model.Doctor, bool) {
	u, err := h.store.UserByID(c.Request.Context(), uid(c))
	if err != nil {
		h.storeErr(c, err)
		return nil, false
	}
	d, err := h.store.DoctorByEmail(c.Request.Context(), u.Email)
	if err != nil {
		h.storeErr(c, err)
		return nil, false
	}
	return d, true
}

// audit records who did what; failures are logged, never surfaced.
func (h *Handler) audit(c *gin.Context, action string) {
	u, err := h.store.UserByID(c.Request.Context(), uid(c))
	if err != nil {
		h.log.WithError(err).Warn("audit: actor lookup failed")
		return
	}
	ev := &model.AuditEvent{
		ID:      uuid.New().String(),
		ActorID: u.ID,
		Email:   u.Email,
		Name:    u.Username,
		Action:  action,
	}
	if err := h.store.AppendAudit(c.Request.Context(), ev); err != nil {
		h.log.WithError(err).Warn("audit: append failed")
	}
}
