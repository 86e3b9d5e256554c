package backup

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberpro/internal/metrics"
	"github.com/BruksfildServices01/barberpro/internal/models"
)

type Event struct {
	Section  models.Section
	TenantID string
}

// Dispatcher faz backup em segundo plano depois das gravações. A fila é
// pequena e descarta eventos quando cheia: um backup pendente já cobre
// as gravações anteriores.
type Dispatcher struct {
	uploader *Uploader
	log      *zap.Logger
	queue    chan Event
	timeout  time.Duration

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(uploader *Uploader, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		uploader: uploader,
		log:      log,
		queue:    make(chan Event, 16),
		timeout:  30 * time.Second,
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		key, err := d.uploader.Upload(ctx)
		cancel()

		if err != nil {
			metrics.BackupsTotal.WithLabelValues("error").Inc()
			d.log.Error("backup failed",
				zap.String("section", string(ev.Section)),
				zap.String("tenant_id", ev.TenantID),
				zap.Error(err),
			)
			continue
		}

		metrics.BackupsTotal.WithLabelValues("ok").Inc()
		d.log.Debug("backup uploaded", zap.String("key", key))
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia, nunca travar a requisição
		metrics.BackupsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn("backup queue full, dropping event", zap.String("tenant_id", ev.TenantID))
	}
}

// OnWrite adapta o Dispatcher para store.WriteHook.
func (d *Dispatcher) OnWrite(section models.Section, tenantID string) {
	d.Dispatch(Event{Section: section, TenantID: tenantID})
}

// Close drena a fila e espera o último backup.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
