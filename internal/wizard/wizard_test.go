package wizard_test

import (
	"context"
	"testing"
	"time"

	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/internal/wizard"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestValidateTimeRange(t *testing.T) {
	t.Parallel()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{
			name:  "valid range",
			start: now.Add(2 * time.Hour),
			end:   now.Add(26 * time.Hour),
		},
		{
			name:    "start in the past",
			start:   now.Add(-time.Minute),
			end:     now.Add(5 * time.Hour),
			wantErr: wizard.ErrStartInPast,
		},
		{
			name:    "start equals now",
			start:   now,
			end:     now.Add(5 * time.Hour),
			wantErr: wizard.ErrStartInPast,
		},
		{
			name:    "end before start",
			start:   now.Add(5 * time.Hour),
			end:     now.Add(4 * time.Hour),
			wantErr: wizard.ErrEndBeforeStart,
		},
		{
			name:    "end equals start",
			start:   now.Add(5 * time.Hour),
			end:     now.Add(5 * time.Hour),
			wantErr: wizard.ErrEndBeforeStart,
		},
		{
			name:    "under one hour",
			start:   now.Add(time.Hour),
			end:     now.Add(time.Hour + 30*time.Minute),
			wantErr: wizard.ErrTooShort,
		},
		{
			name:    "over thirty days",
			start:   now.Add(time.Hour),
			end:     now.Add(time.Hour + 30*24*time.Hour + time.Minute),
			wantErr: wizard.ErrTooLong,
		},
		{
			name:  "exactly one hour",
			start: now.Add(time.Hour),
			end:   now.Add(2 * time.Hour),
		},
		{
			name:  "exactly thirty days",
			start: now.Add(time.Hour),
			end:   now.Add(time.Hour + 30*24*time.Hour),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := wizard.ValidateTimeRange(now, tt.start, tt.end)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEstimateCost(t *testing.T) {
	t.Parallel()
	v := model.Vehicle{HourlyRate: 15, DailyRate: 100, DepositAmount: 50}
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("hours only", func(t *testing.T) {
		t.Parallel()
		est := wizard.EstimateCost(v, start, start.Add(5*time.Hour))
		require.Equal(t, 5, est.DurationHours)
		require.Zero(t, est.DurationDays)
		require.InDelta(t, 75.0, est.RentalCost, 1e-9)
		require.InDelta(t, 125.0, est.Total, 1e-9)
	})

	t.Run("days plus remainder hours", func(t *testing.T) {
		t.Parallel()
		est := wizard.EstimateCost(v, start, start.Add(2*24*time.Hour+3*time.Hour))
		require.Equal(t, 51, est.DurationHours)
		require.Equal(t, 2, est.DurationDays)
		require.InDelta(t, 2*100.0+3*15.0, est.RentalCost, 1e-9)
	})

	t.Run("partial hours round up", func(t *testing.T) {
		t.Parallel()
		est := wizard.EstimateCost(v, start, start.Add(90*time.Minute))
		require.Equal(t, 2, est.DurationHours)
		require.InDelta(t, 30.0, est.RentalCost, 1e-9)
	})
}

func TestFilterVehicles(t *testing.T) {
	t.Parallel()
	list := []model.Vehicle{
		{ID: "v1", Name: "Klara S", Brand: "VinFast", FuelType: model.FuelElectric},
		{ID: "v2", Name: "Evo 200", Brand: "VinFast", FuelType: model.FuelElectric},
		{ID: "v3", Name: "Wave Alpha", Brand: "Honda", FuelType: model.FuelGasoline},
	}

	got := wizard.FilterVehicles(list, "vinfast", model.FuelAll)
	require.Len(t, got, 2)

	got = wizard.FilterVehicles(list, "", model.FuelGasoline)
	require.Len(t, got, 1)
	require.Equal(t, "v3", got[0].ID)

	got = wizard.FilterVehicles(list, "klara", model.FuelElectric)
	require.Len(t, got, 1)
	require.Equal(t, "v1", got[0].ID)

	got = wizard.FilterVehicles(list, "", model.FuelAll)
	require.Len(t, got, 3)
}

type fakeBookingAPI struct {
	created model.BookingWithPayment
	err     error
	byCode  model.Booking
}

func (f *fakeBookingAPI) Create(context.Context, model.CreateBookingRequest) (model.BookingWithPayment, int, error) {
	if f.err != nil {
		return model.BookingWithPayment{}, 500, f.err
	}
	return f.created, 200, nil
}

func (f *fakeBookingAPI) GetByCode(context.Context, string) (model.Booking, int, error) {
	return f.byCode, 200, nil
}

type fakeVehicleAPI struct{ list []model.Vehicle }

func (f *fakeVehicleAPI) Get(context.Context, string) (model.Vehicle, int, error) {
	return model.Vehicle{ID: "v1", HourlyRate: 15, DailyRate: 100}, 200, nil
}

func (f *fakeVehicleAPI) AvailableForBooking(context.Context, string, time.Time, time.Time) ([]model.Vehicle, int, error) {
	return f.list, 200, nil
}

type fakeStationAPI struct{}

func (fakeStationAPI) Get(context.Context, string) (model.Station, int, error) {
	return model.Station{ID: "st1", Name: "Central"}, 200, nil
}

type fakeLauncher struct {
	opened []string
	err    error
}

func (f *fakeLauncher) Open(_ context.Context, url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func validRequest() model.CreateBookingRequest {
	return model.CreateBookingRequest{
		VehicleID:       "v1",
		StationID:       "st1",
		StartTime:       time.Now().Add(2 * time.Hour),
		ExpectedEndTime: time.Now().Add(26 * time.Hour),
	}
}

func TestConfirm_ExternalPaymentBranch(t *testing.T) {
	t.Parallel()
	api := &fakeBookingAPI{created: model.BookingWithPayment{
		Booking: model.Booking{ID: "b1", BookingCode: "BK-777", PaymentStatus: model.PaymentPending},
		MoMoPayment: &model.MoMoPayment{
			PayURL:    "https://pay.example/abc",
			OrderID:   "ord-1",
			RequestID: "req-1",
		},
	}}
	launcher := &fakeLauncher{}
	svc := wizard.NewService(api, &fakeVehicleAPI{}, fakeStationAPI{}, launcher, zap.NewExample())

	out, err := svc.Confirm(context.Background(), validRequest(), true)
	require.NoError(t, err)

	ext, ok := out.(wizard.ExternalPayment)
	require.True(t, ok)
	require.Equal(t, "BK-777", ext.BookingCode)
	require.Equal(t, "ord-1", ext.OrderID)
	require.Equal(t, "req-1", ext.RequestID)
	require.Equal(t, []string{"https://pay.example/abc"}, launcher.opened)
}

func TestConfirm_ExternalPaymentLaunchFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	api := &fakeBookingAPI{created: model.BookingWithPayment{
		Booking:     model.Booking{BookingCode: "BK-778"},
		MoMoPayment: &model.MoMoPayment{PayURL: "https://pay.example/x", OrderID: "o", RequestID: "r"},
	}}
	svc := wizard.NewService(api, &fakeVehicleAPI{}, fakeStationAPI{},
		&fakeLauncher{err: errors.New("cannot open")}, zap.NewExample())

	out, err := svc.Confirm(context.Background(), validRequest(), true)
	require.NoError(t, err)
	_, ok := out.(wizard.ExternalPayment)
	require.True(t, ok, "deep-link failure still lands on the pending screen")
}

func TestConfirm_AlreadyPaidBranch(t *testing.T) {
	t.Parallel()
	api := &fakeBookingAPI{created: model.BookingWithPayment{
		Booking: model.Booking{BookingCode: "BK-779", PaymentStatus: model.PaymentCompleted},
	}}
	launcher := &fakeLauncher{}
	svc := wizard.NewService(api, &fakeVehicleAPI{}, fakeStationAPI{}, launcher, zap.NewExample())

	out, err := svc.Confirm(context.Background(), validRequest(), true)
	require.NoError(t, err)

	paid, ok := out.(wizard.AlreadyPaid)
	require.True(t, ok)
	require.Equal(t, "BK-779", paid.BookingCode)
	require.Empty(t, launcher.opened)
}

func TestConfirm_ManualPaymentBranch(t *testing.T) {
	t.Parallel()
	api := &fakeBookingAPI{created: model.BookingWithPayment{
		Booking: model.Booking{ID: "b2", BookingCode: "BK-780", TotalAmount: 420, PaymentStatus: model.PaymentPending},
	}}
	svc := wizard.NewService(api, &fakeVehicleAPI{}, fakeStationAPI{}, &fakeLauncher{}, zap.NewExample())

	out, err := svc.Confirm(context.Background(), validRequest(), true)
	require.NoError(t, err)

	man, ok := out.(wizard.ManualPayment)
	require.True(t, ok)
	require.Equal(t, "b2", man.BookingID)
	require.InDelta(t, 420.0, man.Amount, 1e-9)
}

func TestConfirm_RequiresTerms(t *testing.T) {
	t.Parallel()
	svc := wizard.NewService(&fakeBookingAPI{}, &fakeVehicleAPI{}, fakeStationAPI{}, &fakeLauncher{}, zap.NewExample())
	_, err := svc.Confirm(context.Background(), validRequest(), false)
	require.ErrorIs(t, err, wizard.ErrTermsRequired)
}

func TestConfirm_CreateFailurePropagates(t *testing.T) {
	t.Parallel()
	svc := wizard.NewService(&fakeBookingAPI{err: errors.New("station closed")},
		&fakeVehicleAPI{}, fakeStationAPI{}, &fakeLauncher{}, zap.NewExample())
	_, err := svc.Confirm(context.Background(), validRequest(), true)
	require.EqualError(t, err, "station closed")
}

func TestBuildReview(t *testing.T) {
	t.Parallel()
	svc := wizard.NewService(&fakeBookingAPI{}, &fakeVehicleAPI{}, fakeStationAPI{}, &fakeLauncher{}, zap.NewExample())

	start := time.Now().Add(2 * time.Hour)
	rev, err := svc.BuildReview(context.Background(), "v1", "st1", model.TimeRange{
		StartTime:       start,
		ExpectedEndTime: start.Add(26 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "v1", rev.Vehicle.ID)
	require.Equal(t, "Central", rev.Station.Name)
	require.Equal(t, 26, rev.Estimate.DurationHours)
	require.Equal(t, 1, rev.Estimate.DurationDays)
}
