package wizard

// Outcome is the result of a successful booking creation. Exactly one of
// the three shapes applies, so callers can branch exhaustively instead of
// probing optional fields.
type Outcome interface {
	outcome()
}

// ExternalPayment: the provider returned a payment deep-link; the user
// continues on the payment-pending screen with the provider identifiers.
type ExternalPayment struct {
	BookingCode string `json:"bookingCode"`
	PayURL      string `json:"payUrl"`
	OrderID     string `json:"orderId"`
	RequestID   string `json:"requestId"`
}

// AlreadyPaid: the backend reported the payment completed at creation.
type AlreadyPaid struct {
	BookingCode string `json:"bookingCode"`
}

// ManualPayment: no provider payload, the user must pick a payment
// method (cash or card) for the created booking.
type ManualPayment struct {
	BookingID   string  `json:"bookingId"`
	BookingCode string  `json:"bookingCode"`
	Amount      float64 `json:"amount"`
}

func (ExternalPayment) outcome() {}
func (AlreadyPaid) outcome()     {}
func (ManualPayment) outcome()   {}
