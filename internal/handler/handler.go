package handler

import (
	"net/http"
	"time"

	"github.com/evstation/rental-service/internal/errs"
	"github.com/evstation/rental-service/internal/lifecycle"
	"github.com/evstation/rental-service/internal/model"
	"github.com/evstation/rental-service/internal/notify"
	"github.com/evstation/rental-service/internal/trips"
	"github.com/evstation/rental-service/internal/wizard"
	"github.com/evstation/rental-service/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Deps struct {
	Booking  BookingService
	Payment  PaymentService
	Trips    TripsService
	Wizard   WizardService
	Queue    QueueService
	Net      Network
	Notifier notify.Notifier
}

type Handler struct {
	bookingSvc BookingService
	paymentSvc PaymentService
	tripsSvc   TripsService
	wizardSvc  WizardService
	queue      QueueService
	net        Network
	notifier   notify.Notifier
	jwtSecret  string
	log        *zap.Logger
}

func New(log *zap.Logger, jwtSecret string, d Deps) *Handler {
	return &Handler{
		bookingSvc: d.Booking,
		paymentSvc: d.Payment,
		tripsSvc:   d.Trips,
		wizardSvc:  d.Wizard,
		queue:      d.Queue,
		net:        d.Net,
		notifier:   d.Notifier,
		jwtSecret:  jwtSecret,
		log:        log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
		newAuthMW(h.jwtSecret),
	)

	api.GET("/trips", h.ListTrips)
	api.POST("/trips/sync", h.SyncTrips)
	api.GET("/trips/queue", h.QueueStats)

	api.POST("/bookings", h.CreateBooking)
	api.POST("/bookings/review", h.ReviewBooking)
	api.GET("/bookings/:bookingId", h.GetBooking)
	api.GET("/bookings/code/:bookingCode", h.GetBookingByCode)
	api.GET("/bookings/code/:bookingCode/payment-status", h.PaymentStatus)
	api.GET("/bookings/:bookingId/transitions", h.GetTransitions)

	api.GET("/vehicles/available", h.AvailableVehicles)
	api.GET("/payments/booking/:bookingId", h.ListPayments)

	staff := api.Group("/staff", staffOnly)
	staff.POST("/bookings/:bookingId/status", h.SubmitTransition)
	staff.POST("/bookings/:bookingId/actions/:action", h.StaffAction)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GetBooking(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is empty")
	}
	ctx := c.Request().Context()

	var b model.Booking
	if err := h.bookingSvc.CB().Call(func() error {
		var (
			code int
			err  error
		)
		b, code, err = h.bookingSvc.Get(ctx, bookingID)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (h *Handler) GetBookingByCode(c echo.Context) error {
	bookingCode := c.Param("bookingCode")
	if bookingCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingCode is empty")
	}
	ctx := c.Request().Context()

	var b model.Booking
	if err := h.bookingSvc.CB().Call(func() error {
		var (
			code int
			err  error
		)
		b, code, err = h.bookingSvc.GetByCode(ctx, bookingCode)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

type listTripsResponse struct {
	Bookings  []model.Booking `json:"bookings"`
	FromCache bool            `json:"fromCache"`
	Stale     bool            `json:"stale"`
	FetchedAt time.Time       `json:"fetchedAt"`
	Error     string          `json:"error,omitempty"`
}

// ListTrips serves the caller's bookings, falling back to the cached
// snapshot per the offline policy. A fetch failure with cached data still
// answers 200, carrying the error alongside the stale list.
func (h *Handler) ListTrips(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	res, loadErr := h.tripsSvc.LoadBookings(ctx, claims.UserID)
	if loadErr != nil {
		if errors.Is(loadErr, errs.ErrOffline) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, errs.ErrOffline.Error())
		}
		if !res.FromCache {
			return echo.NewHTTPError(http.StatusBadGateway, loadErr.Error())
		}
	}

	status := model.BookingStatus(c.QueryParam("status"))
	if status == "" {
		status = model.StatusAll
	}
	filtered := trips.ApplyFilters(res.Bookings, status, c.QueryParam("q"))

	resp := listTripsResponse{
		Bookings:  filtered,
		FromCache: res.FromCache,
		Stale:     res.Stale,
		FetchedAt: res.FetchedAt,
	}
	if loadErr != nil {
		resp.Error = loadErr.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) SyncTrips(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	res, err := h.tripsSvc.Resync(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) QueueStats(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	st, err := h.queue.Stats(c.Request().Context(), claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, st)
}

type transitionOption struct {
	Status   model.BookingStatus `json:"status"`
	Advisory string              `json:"advisory,omitempty"`
}

type transitionsResponse struct {
	CurrentStatus model.BookingStatus `json:"currentStatus"`
	Allowed       []transitionOption  `json:"allowed"`
	Terminal      bool                `json:"terminal"`
	Reason        string              `json:"reason,omitempty"`
}

// GetTransitions exposes the allowed-destination set for the status
// dialog. A terminal booking gets an empty set plus the explanation the
// UI must show.
func (h *Handler) GetTransitions(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is empty")
	}
	ctx := c.Request().Context()

	var b model.Booking
	if err := h.bookingSvc.CB().Call(func() error {
		var (
			code int
			err  error
		)
		b, code, err = h.bookingSvc.Get(ctx, bookingID)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	resp := transitionsResponse{
		CurrentStatus: b.Status,
		Allowed:       make([]transitionOption, 0, 2),
		Terminal:      lifecycle.IsTerminal(b.Status),
	}
	for _, next := range lifecycle.AllowedNext(b.Status) {
		resp.Allowed = append(resp.Allowed, transitionOption{
			Status:   next,
			Advisory: lifecycle.Advisory(next),
		})
	}
	if resp.Terminal {
		resp.Reason = errs.ErrTerminalStatus.Error()
	}
	return c.JSON(http.StatusOK, resp)
}

// SubmitTransition moves a booking one step along the lifecycle. The
// transition is validated against the same table the dialog reads, then
// delegated as exactly one backend mutation. No automatic retry.
func (h *Handler) SubmitTransition(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is empty")
	}
	var req model.TransitionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()

	var b model.Booking
	if err := h.bookingSvc.CB().Call(func() error {
		var (
			code int
			err  error
		)
		b, code, err = h.bookingSvc.Get(ctx, bookingID)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}

	if lifecycle.IsTerminal(b.Status) {
		return echo.NewHTTPError(http.StatusConflict, errs.ErrTerminalStatus.Error())
	}
	if !lifecycle.CanTransition(b.Status, req.Status) {
		return echo.NewHTTPError(http.StatusConflict, errs.ErrIllegalTransition.Error())
	}
	action, ok := lifecycle.Endpoint(req.Status)
	if !ok {
		return echo.NewHTTPError(http.StatusConflict, errs.ErrIllegalTransition.Error())
	}

	updated, code, err := h.bookingSvc.Transition(ctx, bookingID, action, req.Note)
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}

	if err := h.notifier.Publish(notify.Event{
		Type:        notify.EventStatusChanged,
		BookingID:   updated.ID,
		BookingCode: updated.BookingCode,
		Status:      updated.Status,
		RenterID:    updated.RenterID,
		Note:        req.Note,
	}); err != nil {
		h.log.Warn("publish status change", zap.Error(err))
	}

	return c.JSON(http.StatusOK, updated)
}

var staffActions = map[string]model.BookingStatus{
	"confirm":  model.StatusConfirmed,
	"start":    model.StatusStarted,
	"complete": model.StatusCompleted,
	"cancel":   model.StatusCancelled,
}

type staffActionResponse struct {
	Queued  bool           `json:"queued"`
	Booking *model.Booking `json:"booking,omitempty"`
}

// StaffAction handles scan-flow mutations. Online it delegates straight
// to the backend; offline it enqueues the mutation for replay and
// answers 202.
func (h *Handler) StaffAction(c echo.Context) error {
	bookingID := c.Param("bookingId")
	action := c.Param("action")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is empty")
	}
	if _, ok := staffActions[action]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
	}
	claims, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if !h.net.Online() {
		if _, err := h.queue.Enqueue(ctx, claims.UserID, http.MethodPatch,
			"/api/bookings/"+bookingID+"/"+action, nil); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusAccepted, staffActionResponse{Queued: true})
	}

	updated, code, err := h.bookingSvc.Transition(ctx, bookingID, action, "")
	if err != nil {
		return echo.NewHTTPError(code, err.Error())
	}
	return c.JSON(http.StatusOK, staffActionResponse{Booking: &updated})
}

type availableVehiclesQuery struct {
	StationID string `query:"stationId" validate:"required"`
	StartTime string `query:"startTime" validate:"required"`
	EndTime   string `query:"endTime" validate:"required"`
	Query     string `query:"q"`
	Fuel      string `query:"fuel"`
}

func (h *Handler) AvailableVehicles(c echo.Context) error {
	var q availableVehiclesQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	start, err := time.Parse(time.RFC3339, q.StartTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startTime must be RFC3339")
	}
	end, err := time.Parse(time.RFC3339, q.EndTime)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endTime must be RFC3339")
	}
	fuel := model.FuelType(q.Fuel)
	if fuel == "" {
		fuel = model.FuelAll
	}

	list, err := h.wizardSvc.Available(c.Request().Context(), q.StationID,
		model.TimeRange{StartTime: start, ExpectedEndTime: end}, q.Query, fuel)
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, list)
}

type reviewRequest struct {
	VehicleID       string    `json:"vehicleId" validate:"required"`
	StationID       string    `json:"stationId" validate:"required"`
	StartTime       time.Time `json:"startTime" validate:"required"`
	ExpectedEndTime time.Time `json:"expectedEndTime" validate:"required"`
}

func (h *Handler) ReviewBooking(c echo.Context) error {
	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rev, err := h.wizardSvc.BuildReview(c.Request().Context(), req.VehicleID, req.StationID,
		model.TimeRange{StartTime: req.StartTime, ExpectedEndTime: req.ExpectedEndTime})
	if err != nil {
		return wizardError(err)
	}
	return c.JSON(http.StatusOK, rev)
}

type createBookingRequest struct {
	model.CreateBookingRequest
	AcceptTerms bool `json:"acceptTerms"`
}

// CreateBooking runs the wizard's confirm step and answers with the
// discriminated payment outcome.
func (h *Handler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req.CreateBookingRequest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	out, err := h.wizardSvc.Confirm(c.Request().Context(), req.CreateBookingRequest, req.AcceptTerms)
	if err != nil {
		return wizardError(err)
	}

	switch o := out.(type) {
	case wizard.ExternalPayment:
		if err := h.notifier.Publish(notify.Event{
			Type:        notify.EventPaymentPending,
			BookingCode: o.BookingCode,
		}); err != nil {
			h.log.Warn("publish payment pending", zap.Error(err))
		}
		return c.JSON(http.StatusOK, map[string]any{"type": "EXTERNAL_PAYMENT", "payment": o})
	case wizard.AlreadyPaid:
		return c.JSON(http.StatusOK, map[string]any{"type": "ALREADY_PAID", "payment": o})
	case wizard.ManualPayment:
		return c.JSON(http.StatusOK, map[string]any{"type": "MANUAL_PAYMENT", "payment": o})
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown booking outcome")
	}
}

func (h *Handler) PaymentStatus(c echo.Context) error {
	bookingCode := c.Param("bookingCode")
	if bookingCode == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingCode is empty")
	}
	status, err := h.wizardSvc.PollPayment(c.Request().Context(), bookingCode)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"bookingCode":   bookingCode,
		"paymentStatus": status,
	})
}

func (h *Handler) ListPayments(c echo.Context) error {
	bookingID := c.Param("bookingId")
	if bookingID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "bookingId is empty")
	}
	ctx := c.Request().Context()

	var payments []model.Payment
	if err := h.paymentSvc.CB().Call(func() error {
		var (
			code int
			err  error
		)
		payments, code, err = h.paymentSvc.ListByBooking(ctx, bookingID)
		if err != nil {
			return echo.NewHTTPError(code, err.Error())
		}
		return nil
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payments)
}

// wizardError maps wizard sentinel errors to 400 and everything else to
// 502, keeping the backend's message when there is one.
func wizardError(err error) error {
	switch {
	case errors.Is(err, wizard.ErrStartInPast),
		errors.Is(err, wizard.ErrEndBeforeStart),
		errors.Is(err, wizard.ErrTooShort),
		errors.Is(err, wizard.ErrTooLong),
		errors.Is(err, wizard.ErrTermsRequired):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}
