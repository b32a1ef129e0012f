package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/zerosmoke/health-portal/internal/api/metrics"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
	sendTimeout    = 30 * time.Second
)

// ErrQueueFull is returned by Notify when the target worker's buffer is full.
var ErrQueueFull = errors.New("reply mail queue full")

// ErrStopped is returned by Notify once the dispatcher has been stopped.
var ErrStopped = errors.New("reply mail dispatcher stopped")

// Dispatcher delivers reply emails off the request path. Emails are sharded by
// message ID so retries for one message never run concurrently.
type Dispatcher struct {
	workers []chan domain.ReplyEmail
	mailer  ports.Mailer
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, mailer ports.Mailer, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ReplyEmail, numWorkers),
		mailer:  mailer,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ReplyEmail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers exit when ctx is cancelled or
// once Stop has drained their channel.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Notify queues email for delivery without blocking on the mail transport.
func (d *Dispatcher) Notify(ctx context.Context, email domain.ReplyEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		metrics.ReplyEmailsTotal.WithLabelValues("dropped").Inc()
		return ErrStopped
	}

	idx := d.shardIndex(email.MessageID)
	select {
	case d.workers[idx] <- email:
		metrics.ReplyQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	default:
		metrics.ReplyEmailsTotal.WithLabelValues("dropped").Inc()
		return ErrQueueFull
	}
}

// Stop closes every worker channel and waits for queued emails to drain.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// shardIndex maps a message ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(messageID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(messageID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ReplyEmail) {
	defer d.wg.Done()
	label := strconv.Itoa(id)

	for {
		select {
		case <-ctx.Done():
			return
		case email, ok := <-ch:
			if !ok {
				return
			}
			metrics.ReplyQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			d.deliver(ctx, id, email)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, worker int, email domain.ReplyEmail) {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	start := time.Now()
	err := d.mailer.Send(sendCtx, email)
	result := "sent"
	if err != nil {
		result = "failed"
	}
	metrics.ReplyEmailsTotal.WithLabelValues(result).Inc()
	metrics.ReplyEmailDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		d.log.Error().Err(err).
			Str("message_id", email.MessageID).
			Int("worker_id", worker).
			Msg("reply email delivery failed")
		return
	}
	d.log.Info().
		Str("message_id", email.MessageID).
		Int("worker_id", worker).
		Msg("reply email sent")
}
