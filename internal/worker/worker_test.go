package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/lucky-triple/internal/config"
	"github.com/denmor86/lucky-triple/internal/models"
	"github.com/denmor86/lucky-triple/internal/services/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestSMSWorker_ProcessDispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDelivery := mocks.NewMockDeliveryService(ctrl)

	cfg := config.DefaultConfig().SMS
	worker := NewSMSWorker(mockDelivery, cfg)

	dispatches := []models.SMSDispatch{{ID: "d1"}, {ID: "d2"}}
	mockDelivery.EXPECT().GetQueued(gomock.Any(), cfg.BatchSize).Return(dispatches, nil)
	mockDelivery.EXPECT().Deliver(gomock.Any(), dispatches[0]).Return(nil)
	mockDelivery.EXPECT().Deliver(gomock.Any(), dispatches[1]).Return(errors.New("gateway down"))

	worker.ProcessDispatches(context.Background())

	if counts := worker.Breaker.Counts(); counts.TotalFailures != 1 || counts.TotalSuccesses != 1 {
		t.Errorf("Expected one success and one failure, got %+v", counts)
	}
}

func TestSMSWorker_OpenBreakerSkipsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDelivery := mocks.NewMockDeliveryService(ctrl)

	worker := NewSMSWorker(mockDelivery, config.DefaultConfig().SMS)
	for i := 0; i < 5; i++ {
		_, _ = worker.Breaker.Execute(func() (interface{}, error) { return nil, errors.New("gateway down") })
	}
	if worker.Breaker.State() != gobreaker.StateOpen {
		t.Fatalf("Expected open breaker, got %v", worker.Breaker.State())
	}

	// очередь не трогается, пока шлюз недоступен
	worker.ProcessDispatches(context.Background())
}

func TestSMSWorker_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockDelivery := mocks.NewMockDeliveryService(ctrl)
	mockDelivery.EXPECT().GetQueued(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	cfg := config.DefaultConfig().SMS
	cfg.PollInterval = 10 * time.Millisecond
	worker := NewSMSWorker(mockDelivery, cfg)

	worker.Start(context.Background())
	time.Sleep(30 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		worker.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
