// Availability HTTP handler.
//
// This file exposes the public endpoint for querying free slots:
//   - GET /available-slots?date=YYYY-MM-DD
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses.
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkozyrev/barber-booking-backend/internal/schedule"
	"github.com/dkozyrev/barber-booking-backend/internal/services"
)

// AvailabilityService defines the slot-availability operation consumed by
// HTTP handlers. Implementations must be safe for concurrent use and honor
// the provided context.
type AvailabilityService interface {
	// AvailableSlots returns the free slots for a date in chronological order.
	AvailableSlots(ctx context.Context, date string) ([]string, error)
}

// AvailableSlotsResponse wraps the list of free time points for a date.
type AvailableSlotsResponse struct {
	Slots []string `json:"slots"`
}

// GetAvailableSlots handles GET /available-slots. A missing date query
// parameter or a date that is not YYYY-MM-DD yields 400; otherwise the
// response carries the free slots for that day (possibly an empty list).
func (h *Handlers) GetAvailableSlots(c *gin.Context) {
	slots, err := h.availSvc.AvailableSlots(c.Request.Context(), c.Query("date"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDateRequired):
			fail(c, http.StatusBadRequest, ErrCodeValidation, services.ErrDateRequired.Error())
		case errors.Is(err, schedule.ErrBadDate):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, schedule.ErrBadDate.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	if slots == nil {
		slots = []string{}
	}
	ok(c, http.StatusOK, AvailableSlotsResponse{Slots: slots})
}
