// Booking HTTP handlers.
//
// This file exposes the endpoints for creating appointments and for the
// credential-gated admin listing:
//   - POST /appointment   (create a booking)
//   - GET  /appointments  (list all bookings; Basic auth enforced upstream)
//
// Validation and conflict failures both answer 400 with the standard
// envelope; the machine code distinguishes them ("validation_failed" vs
// "slot_taken"). A slot conflict is permanent information, so clients
// should pick another slot rather than retry.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/dkozyrev/barber-booking-backend/internal/domain"
	"github.com/dkozyrev/barber-booking-backend/internal/repo"
	"github.com/dkozyrev/barber-booking-backend/internal/schedule"
	"github.com/dkozyrev/barber-booking-backend/internal/services"
)

// bookings counts booking attempts by outcome (created, conflict, rejected,
// failed). Low-cardinality companion to the generic HTTP metrics.
var bookings = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bookings_total",
		Help: "Total number of booking attempts by outcome.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(bookings)
}

// BookingService defines the appointment operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type BookingService interface {
	// Create validates and persists a new appointment.
	Create(ctx context.Context, in services.CreateAppointmentInput) (*domain.Appointment, error)
	// List returns every appointment in creation order.
	List(ctx context.Context) ([]domain.Appointment, error)
}

// Handlers groups the HTTP endpoints for availability and bookings. It
// depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	availSvc   AvailabilityService
	bookingSvc BookingService
}

// New constructs a Handlers instance bound to the given services.
func New(availSvc AvailabilityService, bookingSvc BookingService) *Handlers {
	return &Handlers{availSvc: availSvc, bookingSvc: bookingSvc}
}

// CreateAppointmentRequest is the JSON payload for booking a slot.
//
// Example:
//
//	{
//	  "date": "2025-01-15",
//	  "time": "09:00",
//	  "specialist": "Ivan",
//	  "service": "Haircut",
//	  "strizhkaType": "Scissors",
//	  "name": "Peter",
//	  "phone": "+7 000 000-00-00"
//	}
type CreateAppointmentRequest struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Specialist   string `json:"specialist"`
	Service      string `json:"service"`
	StrizhkaType string `json:"strizhkaType"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
}

// CreateAppointmentResponse confirms a successful booking and echoes the
// persisted appointment including its store-assigned id.
type CreateAppointmentResponse struct {
	Message     string             `json:"message"`
	Appointment domain.Appointment `json:"appointment"`
}

// CreateAppointment handles POST /appointment.
func (h *Handlers) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	a, err := h.bookingSvc.Create(c.Request.Context(), services.CreateAppointmentInput{
		Date:         req.Date,
		Time:         req.Time,
		Specialist:   req.Specialist,
		Service:      req.Service,
		StrizhkaType: req.StrizhkaType,
		Name:         req.Name,
		Phone:        req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			bookings.WithLabelValues("rejected").Inc()
			fail(c, http.StatusBadRequest, ErrCodeValidation, services.ErrMissingFields.Error())
		case errors.Is(err, schedule.ErrBadDate), errors.Is(err, schedule.ErrBadTime):
			bookings.WithLabelValues("rejected").Inc()
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		case errors.Is(err, services.ErrSlotTaken):
			bookings.WithLabelValues("conflict").Inc()
			fail(c, http.StatusBadRequest, ErrCodeSlotTaken, services.ErrSlotTaken.Error())
		default:
			bookings.WithLabelValues("failed").Inc()
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}

	bookings.WithLabelValues("created").Inc()
	ok(c, http.StatusOK, CreateAppointmentResponse{
		Message:     "appointment created successfully",
		Appointment: *a,
	})
}

// ListAppointments handles GET /appointments (behind Basic auth). The
// response is the plain JSON array of all appointments in creation order.
// Appointments are append-only, so (count, latest CreatedAt) forms a weak
// ETag and repeated polls by the admin UI can short-circuit with 304.
func (h *Handlers) ListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	var db *gorm.DB
	if svc, ok := h.bookingSvc.(*services.BookingService); ok {
		db = svc.DB
	}
	if db != nil {
		count, maxTS, err := repo.AppointmentsStats(ctx, db)
		if err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"appointments:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	list, err := h.bookingSvc.List(ctx)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	if list == nil {
		list = []domain.Appointment{}
	}
	ok(c, http.StatusOK, list)
}
