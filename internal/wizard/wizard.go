// Package wizard drives booking creation: time range selection, vehicle
// choice, review with a display-only estimate, then the create call and
// its three-way payment branch. Pricing authority stays with the backend;
// everything computed here is advisory.
package wizard

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/evstation/rental-service/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	minDuration = time.Hour
	maxDuration = 30 * 24 * time.Hour
)

// Distinct validation errors so each violation can surface its own
// inline message.
var (
	ErrStartInPast    = errors.New("start time must be in the future")
	ErrEndBeforeStart = errors.New("end time must be after start time")
	ErrTooShort       = errors.New("minimum rental duration is 1 hour")
	ErrTooLong        = errors.New("maximum rental duration is 30 days")
	ErrTermsRequired  = errors.New("terms and conditions must be accepted")
)

// ValidateTimeRange checks every booking window constraint independently.
func ValidateTimeRange(now, start, end time.Time) error {
	if !start.After(now) {
		return ErrStartInPast
	}
	if !end.After(start) {
		return ErrEndBeforeStart
	}
	d := end.Sub(start)
	if d < minDuration {
		return ErrTooShort
	}
	if d > maxDuration {
		return ErrTooLong
	}
	return nil
}

// Estimate blends the day and hour rates: full days at the daily rate
// plus remainder hours at the hourly rate.
type Estimate struct {
	DurationHours int     `json:"durationHours"`
	DurationDays  int     `json:"durationDays"`
	RentalCost    float64 `json:"rentalCost"`
	Deposit       float64 `json:"deposit"`
	Total         float64 `json:"total"`
}

func EstimateCost(v model.Vehicle, start, end time.Time) Estimate {
	hours := int(math.Ceil(end.Sub(start).Hours()))
	days := hours / 24

	var rental float64
	if days > 0 {
		rental = float64(days)*v.DailyRate + float64(hours%24)*v.HourlyRate
	} else {
		rental = float64(hours) * v.HourlyRate
	}
	return Estimate{
		DurationHours: hours,
		DurationDays:  days,
		RentalCost:    rental,
		Deposit:       v.DepositAmount,
		Total:         rental + v.DepositAmount,
	}
}

// FilterVehicles narrows the availability result client-side: a
// case-insensitive substring match on name or brand plus an exact fuel
// type filter (ALL or empty passes everything). Pure.
func FilterVehicles(list []model.Vehicle, query string, fuel model.FuelType) []model.Vehicle {
	out := make([]model.Vehicle, 0, len(list))
	q := normalize(query)
	for _, v := range list {
		if q != "" && !contains(v.Name, q) && !contains(v.Brand, q) {
			continue
		}
		if fuel != "" && fuel != model.FuelAll && v.FuelType != fuel {
			continue
		}
		out = append(out, v)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

type BookingAPI interface {
	Create(ctx context.Context, req model.CreateBookingRequest) (model.BookingWithPayment, int, error)
	GetByCode(ctx context.Context, bookingCode string) (model.Booking, int, error)
}

type VehicleAPI interface {
	Get(ctx context.Context, vehicleID string) (model.Vehicle, int, error)
	AvailableForBooking(ctx context.Context, stationID string, start, end time.Time) ([]model.Vehicle, int, error)
}

type StationAPI interface {
	Get(ctx context.Context, stationID string) (model.Station, int, error)
}

// Launcher hands a payment URL over to the provider, the gateway's
// analogue of the platform deep-link launcher.
type Launcher interface {
	Open(ctx context.Context, url string) error
}

type Service struct {
	bookings BookingAPI
	vehicles VehicleAPI
	stations StationAPI
	launcher Launcher
	log      *zap.Logger
}

func NewService(bookings BookingAPI, vehicles VehicleAPI, stations StationAPI, launcher Launcher, log *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		vehicles: vehicles,
		stations: stations,
		launcher: launcher,
		log:      log.Named("wizard"),
	}
}

// Available returns vehicles free at the station for the window, after
// validating the window.
func (s *Service) Available(ctx context.Context, stationID string, tr model.TimeRange, query string, fuel model.FuelType) ([]model.Vehicle, error) {
	if err := ValidateTimeRange(time.Now(), tr.StartTime, tr.ExpectedEndTime); err != nil {
		return nil, err
	}
	list, _, err := s.vehicles.AvailableForBooking(ctx, stationID, tr.StartTime, tr.ExpectedEndTime)
	if err != nil {
		return nil, err
	}
	return FilterVehicles(list, query, fuel), nil
}

type Review struct {
	Vehicle  model.Vehicle `json:"vehicle"`
	Station  model.Station `json:"station"`
	Estimate Estimate      `json:"estimate"`
}

// BuildReview assembles the confirmation screen: vehicle and station are
// fetched concurrently, the estimate is recomputed for display.
func (s *Service) BuildReview(ctx context.Context, vehicleID, stationID string, tr model.TimeRange) (Review, error) {
	if err := ValidateTimeRange(time.Now(), tr.StartTime, tr.ExpectedEndTime); err != nil {
		return Review{}, err
	}

	var (
		v  model.Vehicle
		st model.Station
	)
	gg, ctxGroup := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		v, _, err = s.vehicles.Get(ctxGroup, vehicleID)
		return err
	})
	gg.Go(func() error {
		var err error
		st, _, err = s.stations.Get(ctxGroup, stationID)
		return err
	})
	if err := gg.Wait(); err != nil {
		return Review{}, err
	}

	return Review{
		Vehicle:  v,
		Station:  st,
		Estimate: EstimateCost(v, tr.StartTime, tr.ExpectedEndTime),
	}, nil
}

// Confirm creates the booking and resolves the payment branch in
// priority order: provider deep-link first, completed payment second,
// manual method selection last. A failed create leaves no side effects
// on the caller's wizard state, so retrying is safe.
func (s *Service) Confirm(ctx context.Context, req model.CreateBookingRequest, acceptedTerms bool) (Outcome, error) {
	if !acceptedTerms {
		return nil, ErrTermsRequired
	}
	if err := ValidateTimeRange(time.Now(), req.StartTime, req.ExpectedEndTime); err != nil {
		return nil, err
	}

	b, _, err := s.bookings.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	switch {
	case b.MoMoPayment != nil && b.MoMoPayment.PayURL != "":
		// opening the provider link is best effort, the pending screen
		// works either way
		if err := s.launcher.Open(ctx, b.MoMoPayment.PayURL); err != nil {
			s.log.Warn("unable to open payment url",
				zap.String("bookingCode", b.BookingCode), zap.Error(err))
		}
		return ExternalPayment{
			BookingCode: b.BookingCode,
			PayURL:      b.MoMoPayment.PayURL,
			OrderID:     b.MoMoPayment.OrderID,
			RequestID:   b.MoMoPayment.RequestID,
		}, nil
	case b.PaymentStatus == model.PaymentCompleted:
		return AlreadyPaid{BookingCode: b.BookingCode}, nil
	default:
		return ManualPayment{
			BookingID:   b.ID,
			BookingCode: b.BookingCode,
			Amount:      b.TotalAmount,
		}, nil
	}
}

// PollPayment reports the payment progress of a pending booking, looked
// up by its human-readable code. The pending screen calls this on an
// interval.
func (s *Service) PollPayment(ctx context.Context, bookingCode string) (model.PaymentStatus, error) {
	b, _, err := s.bookings.GetByCode(ctx, bookingCode)
	if err != nil {
		return "", err
	}
	return b.PaymentStatus, nil
}
