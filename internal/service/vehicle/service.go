package vehicle

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
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

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *Service) get(ctx context.Context, u string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
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
			msg = "vehicle service request failed"
		}
		return resp.StatusCode, errors.New(msg)
	}
	if env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return http.StatusBadGateway, err
		}
	}
	return resp.StatusCode, nil
}

func (s *Service) Get(ctx context.Context, vehicleID string) (model.Vehicle, int, error) {
	var v model.Vehicle
	code, err := s.get(ctx, fmt.Sprintf("http://%s/api/vehicles/%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), vehicleID), &v)
	if err != nil {
		return model.Vehicle{}, code, err
	}
	return v, code, nil
}

// AvailableForBooking queries vehicles free at the station for the whole
// time window. Availability is the backend's call; no client-side checks.
func (s *Service) AvailableForBooking(ctx context.Context, stationID string, start, end time.Time) ([]model.Vehicle, int, error) {
	q := url.Values{}
	q.Set("stationId", stationID)
	q.Set("startTime", start.Format(time.RFC3339))
	q.Set("endTime", end.Format(time.RFC3339))

	var list []model.Vehicle
	code, err := s.get(ctx, fmt.Sprintf("http://%s/api/vehicles/available/booking?%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), q.Encode()), &list)
	if err != nil {
		return nil, code, err
	}
	return list, code, nil
}
