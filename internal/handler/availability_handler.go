package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-booking-api/internal/model"
	"clinic-booking-api/internal/schedule"
)

type dayWindowResponse struct {
	Day   string  `json:"day"`
	Start *string `json:"start_time"`
	End   *string `json:"end_time"`
}

func (h *Handler) WeekAvailability(c *gin.Context) {
	doctor, ok := h.doctorFor(c)
	if !ok {
		return
	}

	week, err := h.store.WeekSchedule(c.Request.Context(), doctor.ID)
	if err != nil {
		h.storeErr(c, err)
		return
	}

	out := make([]dayWindowResponse, len(week))
	for i, w := range week {
		out[i] = dayWindowResponse{Day: w.DayName, Start: w.StartTime, End: w.EndTime}
	}
	c.JSON(http.StatusOK, gin.H{"schedule": out})
}

// UpdateAvailability reads one form field group per weekday:
// unavailable_<Day>, start_time_<Day>, end_time_<Day>. A checked unavailable
// flag, or a window with either bound missing, stores a null window.
func (h *Handler) UpdateAvailability(c *gin.Context) {
	doctor, ok := h.doctorFor(c)
	if !ok {
		return
	}

	windows := make([]model.DayWindow, 0, len(model.Weekdays))
	for _, day := range model.Weekdays {
		unavailable := c.PostForm("unavailable_" + day)
		start := c.PostForm("start_time_" + day)
		end := c.PostForm("end_time_" + day)

		w := model.DayWindow{DoctorID: doctor.ID, DayName: day}
		if unavailable == "" && start != "" && end != "" {
			if err := schedule.ValidWindow(start, end); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s: %v", day, err)})
				return
			}
			w.StartTime = &start
			w.EndTime = &end
		}
		windows = append(windows, w)
	}

	if err := h.store.ReplaceWeek(c.Request.Context(), doctor.ID, windows); err != nil {
		h.storeErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "availability updated"})
}
