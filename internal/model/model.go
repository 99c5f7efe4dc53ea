package model

import (
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusStarted   BookingStatus = "STARTED"
	StatusCompleted BookingStatus = "COMPLETED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// StatusAll is the sentinel list-filter value that matches every status.
const StatusAll BookingStatus = "ALL"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

type FuelType string

const (
	FuelElectric FuelType = "ELECTRIC"
	FuelGasoline FuelType = "GASOLINE"
	FuelDiesel   FuelType = "DIESEL"
	FuelHybrid   FuelType = "HYBRID"
)

// FuelAll is the sentinel vehicle-filter value that matches every fuel type.
const FuelAll FuelType = "ALL"

type Booking struct {
	ID              string        `json:"id"`
	BookingCode     string        `json:"bookingCode"`
	RenterID        string        `json:"renterId"`
	RenterName      string        `json:"renterName,omitempty"`
	VehicleID       string        `json:"vehicleId"`
	VehicleName     string        `json:"vehicleName"`
	LicensePlate    string        `json:"licensePlate,omitempty"`
	StationID       string        `json:"stationId"`
	StationName     string        `json:"stationName,omitempty"`
	StartTime       time.Time     `json:"startTime"`
	ExpectedEndTime time.Time     `json:"expectedEndTime"`
	ActualEndTime   *time.Time    `json:"actualEndTime,omitempty"`
	Status          BookingStatus `json:"status"`
	CheckedOutByID  string        `json:"checkedOutById,omitempty"`
	CheckedInByID   string        `json:"checkedInById,omitempty"`
	BasePrice       float64       `json:"basePrice"`
	DepositPaid     float64       `json:"depositPaid"`
	ExtraFee        float64       `json:"extraFee"`
	TotalAmount     float64       `json:"totalAmount"`
	PickupNote      string        `json:"pickupNote,omitempty"`
	ReturnNote      string        `json:"returnNote,omitempty"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

type CreateBookingRequest struct {
	VehicleID       string    `json:"vehicleId" validate:"required"`
	StationID       string    `json:"stationId" validate:"required"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	ExpectedEndTime time.Time `json:"expectedEndTime" validate:"required"`
	PickupNote      string    `json:"pickupNote,omitempty"`
}

// MoMoPayment is the payment-provider payload returned when a freshly
// created booking must be paid through the external provider app.
type MoMoPayment struct {
	PartnerCode string  `json:"partnerCode"`
	OrderID     string  `json:"orderId"`
	RequestID   string  `json:"requestId"`
	Amount      float64 `json:"amount"`
	Message     string  `json:"message"`
	ResultCode  string  `json:"resultCode"`
	PayURL      string  `json:"payUrl"`
	Deeplink    string  `json:"deeplink,omitempty"`
	QRCodeURL   string  `json:"qrCodeUrl,omitempty"`
}

type BookingWithPayment struct {
	Booking     `json:",inline"`
	MoMoPayment *MoMoPayment `json:"momoPayment,omitempty"`
}

type Vehicle struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	LicensePlate  string   `json:"licensePlate"`
	FuelType      FuelType `json:"fuelType"`
	HourlyRate    float64  `json:"hourlyRate"`
	DailyRate     float64  `json:"dailyRate"`
	DepositAmount float64  `json:"depositAmount"`
	Status        string   `json:"status"`
	StationID     string   `json:"stationId,omitempty"`
}

type Station struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Status  string `json:"status"`
}

type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"bookingId"`
	Amount        float64       `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId"`
	PaidAt        *time.Time    `json:"paidAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// TransitionRequest is the admin status-transition payload.
type TransitionRequest struct {
	Status BookingStatus `json:"status" validate:"required"`
	Note   string        `json:"note,omitempty" validate:"max=500"`
}

type TimeRange struct {
	StartTime       time.Time `json:"startTime" validate:"required"`
	ExpectedEndTime time.Time `json:"expectedEndTime" validate:"required"`
}
