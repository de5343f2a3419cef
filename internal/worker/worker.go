package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/logger"
	"github.com/denmor86/lucky-triple/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "sms-gateway",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до шлюза
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit Breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// SMSWorker - фоновая доставка рассылок через шлюз
type SMSWorker struct {
	Delivery     services.DeliveryService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewSMSWorker - конструктор обработчика очереди рассылок
func NewSMSWorker(delivery services.DeliveryService, cfg config.SMSConfig) *SMSWorker {
	return &SMSWorker{
		Delivery:     delivery,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    cfg.BatchSize,
		PollInterval: cfg.PollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *SMSWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SMSWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SMSWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SMSWorker signal stop")
			return
		case <-ctx.Done():
			logger.Info("SMSWorker context done")
			return
		case <-ticker.C:
			w.ProcessDispatches(ctx)
		}
	}
}

// ProcessDispatches - обработка пачки рассылок
func (w *SMSWorker) ProcessDispatches(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), " unavailable. Waiting...")
		return
	}

	dispatches, err := w.Delivery.GetQueued(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get dispatches for delivery", err)
		return
	}

	for _, dispatch := range dispatches {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Delivery.Deliver(ctx, dispatch)
		})

		if err != nil {
			logger.Error("Error dispatch delivery", err)
		}
	}
}
