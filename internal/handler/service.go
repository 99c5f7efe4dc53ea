package handler

import (
	"context"

	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/internal/queue"
	"github.com/evstation/rental-service/internal/service/booking"
	"github.com/evstation/rental-service/internal/service/payment"
	"github.com/evstation/rental-service/internal/trips"
	"github.com/evstation/rental-service/internal/wizard"
	"github.com/evstation/rental-service/pkg/breaker"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BookingService = (*booking.Service)(nil)
	_ PaymentService = (*payment.Service)(nil)
	_ TripsService   = (*trips.Service)(nil)
	_ WizardService  = (*wizard.Service)(nil)
	_ QueueService   = (*queue.Queue)(nil)
)

type BookingService interface {
	Get(ctx context.Context, bookingID string) (model.Booking, int, error)
	GetByCode(ctx context.Context, bookingCode string) (model.Booking, int, error)
	Transition(ctx context.Context, bookingID, action, note string) (model.Booking, int, error)
	CB() breaker.CircuitBreaker
}

type PaymentService interface {
	ListByBooking(ctx context.Context, bookingID string) ([]model.Payment, int, error)
	CB() breaker.CircuitBreaker
}

type TripsService interface {
	LoadBookings(ctx context.Context, userID string) (trips.ListResult, error)
	Resync(ctx context.Context, userID string) (queue.Result, error)
}

type WizardService interface {
	Available(ctx context.Context, stationID string, tr model.TimeRange, query string, fuel model.FuelType) ([]model.Vehicle, error)
	BuildReview(ctx context.Context, vehicleID, stationID string, tr model.TimeRange) (wizard.Review, error)
	Confirm(ctx context.Context, req model.CreateBookingRequest, acceptedTerms bool) (wizard.Outcome, error)
	PollPayment(ctx context.Context, bookingCode string) (model.PaymentStatus, error)
}

type QueueService interface {
	Enqueue(ctx context.Context, userID, method, endpoint string, payload []byte) (queue.Action, error)
	Stats(ctx context.Context, userID string) (queue.Stats, error)
}

type Network interface {
	Online() bool
}
