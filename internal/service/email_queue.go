package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"carrental-backend/internal/logger"
	"carrental-backend/internal/metrics"
)

var ErrEmailQueueFull = errors.New("email queue is full")

type emailJob struct {
	ID        string
	Message   EmailMessage
	Retries   int
	CreatedAt time.Time
}

// EmailQueue sends emails on a fixed pool of workers and retries failures
// with quadratic backoff.
type EmailQueue struct {
	sender     EmailSender
	jobs       chan emailJob
	maxRetries int
	workers    int
	backoff    func(retries int) time.Duration
	wg         sync.WaitGroup
	seq        uint64
	mu         sync.Mutex
}

func NewEmailQueue(sender EmailSender, workers, queueSize, maxRetries int) *EmailQueue {
	return &EmailQueue{
		sender:     sender,
		jobs:       make(chan emailJob, queueSize),
		maxRetries: maxRetries,
		workers:    workers,
		backoff: func(retries int) time.Duration {
			return time.Duration(retries*retries) * time.Second
		},
	}
}

// Start launches the workers. They stop when ctx is cancelled; Wait blocks
// until they have.
func (q *EmailQueue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
}

func (q *EmailQueue) Wait() {
	q.wg.Wait()
}

func (q *EmailQueue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	logger.Debug("Email worker started", "worker", id)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Email worker stopping", "worker", id)
			q.drain()
			return
		case job := <-q.jobs:
			q.processJob(ctx, job)
		}
	}
}

func (q *EmailQueue) processJob(ctx context.Context, job emailJob) {
	err := q.sender.Send(ctx, job.Message)
	if err == nil {
		metrics.EmailsTotal.WithLabelValues(job.Message.Template, "sent").Inc()
		logger.Info("Email sent", "job_id", job.ID, "to", job.Message.To, "template", job.Message.Template)
		return
	}

	if job.Retries >= q.maxRetries {
		metrics.EmailsTotal.WithLabelValues(job.Message.Template, "failed").Inc()
		logger.Error("Email failed after retries", "job_id", job.ID, "to", job.Message.To, "retries", job.Retries, "error", err)
		return
	}

	job.Retries++
	backoff := q.backoff(job.Retries)
	metrics.EmailsTotal.WithLabelValues(job.Message.Template, "retry").Inc()
	logger.Warn("Retrying email", "job_id", job.ID, "attempt", job.Retries, "max_retries", q.maxRetries, "backoff", backoff, "error", err)

	time.AfterFunc(backoff, func() {
		select {
		case q.jobs <- job:
		default:
			metrics.EmailsTotal.WithLabelValues(job.Message.Template, "dropped").Inc()
			logger.Error("Email retry dropped, queue full", "job_id", job.ID, "to", job.Message.To)
		}
	})
}

// drain makes one last delivery attempt for anything still buffered so that
// a shutdown does not silently lose confirmations. Failures are not retried.
func (q *EmailQueue) drain() {
	for {
		select {
		case job := <-q.jobs:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			job.Retries = q.maxRetries
			q.processJob(ctx, job)
			cancel()
		default:
			return
		}
	}
}

// Enqueue never blocks; it fails when the buffer is full.
func (q *EmailQueue) Enqueue(msg EmailMessage) error {
	job := emailJob{
		ID:        q.nextID(),
		Message:   msg,
		CreatedAt: time.Now(),
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		metrics.EmailsTotal.WithLabelValues(msg.Template, "dropped").Inc()
		return ErrEmailQueueFull
	}
}

func (q *EmailQueue) nextID() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	return fmt.Sprintf("email-%d-%d", time.Now().UnixNano(), q.seq)
}
