package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evstation/rental-service/config"
	"github.com/evstation/rental-service/internal/cache"
	"github.com/evstation/rental-service/internal/handler"
	"github.com/evstation/rental-service/internal/netmon"
	"github.com/evstation/rental-service/internal/notify"
	"github.com/evstation/rental-service/internal/queue"
	"github.com/evstation/rental-service/internal/server"
	"github.com/evstation/rental-service/internal/service/booking"
	"github.com/evstation/rental-service/internal/service/payment"
	"github.com/evstation/rental-service/internal/service/station"
	"github.com/evstation/rental-service/internal/service/vehicle"
	"github.com/evstation/rental-service/internal/trips"
	"github.com/evstation/rental-service/internal/wizard"
	"github.com/evstation/rental-service/pkg/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "gateway")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	var notifier notify.Notifier = notify.Nop{}
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := notify.NewProducer(cfg.Kafka)
		if err != nil {
			log.Warn("kafka producer unavailable, events disabled", zap.Error(err))
		} else {
			notifier = notify.New(producer, cfg.Kafka.Topic)
			defer producer.Close() //nolint:errcheck
		}
	}

	bookingSvc := booking.NewService(log, cfg)
	vehicleSvc := vehicle.NewService(log, cfg)
	stationSvc := station.NewService(log, cfg)
	paymentSvc := payment.NewService(log, cfg)

	bookingCache := cache.New(rdb, cfg.Sync.CacheTTL, log)
	actionQueue := queue.New(queue.NewRedisStore(rdb), cfg.Sync.QueueMaxRetries, log)

	mon := netmon.New(netmon.HTTPProbe(cfg.Backend), cfg.Sync.ProbeInterval, log)

	replay := func(ctx context.Context, a queue.Action) error {
		_, err := bookingSvc.Raw(ctx, a.Method, a.Endpoint, a.Payload)
		return err
	}
	tripsSvc := trips.NewService(bookingSvc, bookingCache, actionQueue, mon, replay, log)
	wizardSvc := wizard.NewService(bookingSvc, vehicleSvc, stationSvc, wizard.NewHTTPLauncher(), log)

	mon.OnReconnect(func(ctx context.Context) {
		users, err := actionQueue.PendingUsers(ctx)
		if err != nil {
			log.Warn("pending users lookup", zap.Error(err))
			return
		}
		for _, userID := range users {
			if _, err := tripsSvc.Resync(ctx, userID); err != nil {
				log.Warn("reconnect resync", zap.String("userID", userID), zap.Error(err))
			}
		}
	})

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go mon.Run(runCtx)

	h := handler.New(log, cfg.Auth.JWTSecret, handler.Deps{
		Booking:  bookingSvc,
		Payment:  paymentSvc,
		Trips:    tripsSvc,
		Wizard:   wizardSvc,
		Queue:    actionQueue,
		Net:      mon,
		Notifier: notifier,
	})

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err := srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		log.Warn("redis close", zap.Error(err))
	}
	log.Info("Graceful shutdown finished")
}
