package payment

import (
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

// ListByBooking returns the payment history recorded for one booking.
func (s *Service) ListByBooking(ctx context.Context, bookingID string) ([]model.Payment, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("http://%s/api/payments/booking/%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), bookingID), http.NoBody)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	if token, ok := auth.TokenFromContext(ctx); ok {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusServiceUnavailable, err
	}
	defer resp.Body.Close()

	var env struct {
		Data    []model.Payment `json:"data"`
		Message string          `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, http.StatusBadGateway, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		msg := env.Message
		if msg == "" {
			msg = "payment service request failed"
		}
		return nil, resp.StatusCode, errors.New(msg)
	}
	return env.Data, resp.StatusCode, nil
}
