// Package booking is the HTTP client for the authoritative booking API.
// The gateway never owns booking state; every mutation is a single request
// delegated here.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/evstation/rental-service/config"
	"github.com/evstation/rental-service/internal/auth"
	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/pkg/breaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.Backend
	cb     breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.Backend,
		cb:     breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Service) CB() breaker.CircuitBreaker {
	return s.cb
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *Service) url(format string, a ...any) string {
	return fmt.Sprintf("http://%s"+format, append([]any{net.JoinHostPort(s.cfg.Host, s.cfg.Port)}, a...)...)
}

func (s *Service) do(ctx context.Context, method, url string, body, out any) (int, error) {
	var rd *bytes.Buffer
	if body != nil {
		rd = bytes.NewBuffer(nil)
		if err := json.NewEncoder(rd).Encode(body); err != nil {
			return http.StatusBadRequest, err
		}
	}
	var req *http.Request
	var err error
	if rd != nil {
		req, err = http.NewRequestWithContext(ctx, method, url, rd)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, url, http.NoBody)
	}
	if err != nil {
		return http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	if token, ok := auth.TokenFromContext(ctx); ok {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return http.StatusServiceUnavailable, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return http.StatusBadGateway, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = "booking service request failed"
		}
		return resp.StatusCode, errors.New(msg)
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return http.StatusBadGateway, err
		}
	}
	return resp.StatusCode, nil
}

func (s *Service) Create(ctx context.Context, req model.CreateBookingRequest) (model.BookingWithPayment, int, error) {
	var b model.BookingWithPayment
	code, err := s.do(ctx, http.MethodPost, s.url("/api/bookings"), req, &b)
	if err != nil {
		return model.BookingWithPayment{}, code, err
	}
	return b, code, nil
}

func (s *Service) Get(ctx context.Context, bookingID string) (model.Booking, int, error) {
	var b model.Booking
	code, err := s.do(ctx, http.MethodGet, s.url("/api/bookings/%s", bookingID), nil, &b)
	if err != nil {
		return model.Booking{}, code, err
	}
	return b, code, nil
}

func (s *Service) GetByCode(ctx context.Context, bookingCode string) (model.Booking, int, error) {
	var b model.Booking
	code, err := s.do(ctx, http.MethodGet, s.url("/api/bookings/code/%s", bookingCode), nil, &b)
	if err != nil {
		return model.Booking{}, code, err
	}
	return b, code, nil
}

func (s *Service) MyBookings(ctx context.Context) ([]model.Booking, int, error) {
	var list []model.Booking
	code, err := s.do(ctx, http.MethodGet, s.url("/api/bookings/my-bookings"), nil, &list)
	if err != nil {
		return nil, code, err
	}
	return list, code, nil
}

// Raw issues a mutation described by a queued offline action: method plus
// backend path, payload passed through untouched.
func (s *Service) Raw(ctx context.Context, method, endpoint string, payload []byte) (int, error) {
	var body any
	if len(payload) > 0 {
		body = json.RawMessage(payload)
	}
	return s.do(ctx, method, s.url("%s", endpoint), body, nil)
}

// Transition issues the single PATCH mutation for one lifecycle step. The
// action suffix comes from lifecycle.Endpoint and is one of
// confirm, start, complete, cancel.
func (s *Service) Transition(ctx context.Context, bookingID, action, note string) (model.Booking, int, error) {
	var body any
	if note != "" {
		body = map[string]string{"note": note}
	}
	var b model.Booking
	code, err := s.do(ctx, http.MethodPatch, s.url("/api/bookings/%s/%s", bookingID, action), body, &b)
	if err != nil {
		return model.Booking{}, code, err
	}
	return b, code, nil
}
