package service

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/storefront-cart/internal/cart"
	"github.com/guttosm/storefront-cart/internal/logger"
	"github.com/guttosm/storefront-cart/internal/metrics"
	"github.com/guttosm/storefront-cart/internal/repository"
)

// ErrPersistenceWriteFailed marks a cart document that could not be written.
// It is logged and counted, never returned to the shopper.
var ErrPersistenceWriteFailed = errors.New("cart persistence write failed")

// Persister applies persist effects. Failures never roll back the in-memory cart.
type Persister interface {
	Persist(ctx context.Context, key string, state cart.State)
	Stop()
}

// SyncPersister writes inline on the request goroutine.
type SyncPersister struct {
	store        repository.CartStore
	writeTimeout time.Duration
}

// NewSyncPersister creates a SyncPersister.
func NewSyncPersister(store repository.CartStore, writeTimeout time.Duration) *SyncPersister {
	return &SyncPersister{store: store, writeTimeout: writeTimeout}
}

func (p *SyncPersister) Persist(ctx context.Context, key string, state cart.State) {
	writeCtx, cancel := writeContext(ctx, p.writeTimeout)
	defer cancel()
	_ = write(writeCtx, p.store, key, state)
}

func (p *SyncPersister) Stop() {}

// AsyncPersisterConfig holds configuration for the async persister.
type AsyncPersisterConfig struct {
	// BufferSize is the queue length per worker.
	BufferSize   int
	NumWorkers   int
	WriteTimeout time.Duration
}

// DefaultAsyncPersisterConfig returns sensible defaults.
func DefaultAsyncPersisterConfig() AsyncPersisterConfig {
	return AsyncPersisterConfig{
		BufferSize:   256,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

type persistJob struct {
	ctx   context.Context
	key   string
	state cart.State
}

// AsyncPersister writes through a bounded worker pool. Jobs for one key always go
// to the same worker, so writes for a session land in the order they were made.
// A full queue drops the write; the next mutation of that session supersedes it.
type AsyncPersister struct {
	store        repository.CartStore
	queues       []chan persistJob
	wg           sync.WaitGroup
	writeTimeout time.Duration
	stopOnce     sync.Once
	mu           sync.RWMutex
	stopped      bool

	enqueued int64
	dropped  int64
	written  int64
	failed   int64
}

// NewAsyncPersister starts the worker pool.
func NewAsyncPersister(store repository.CartStore, cfg AsyncPersisterConfig) *AsyncPersister {
	def := DefaultAsyncPersisterConfig()
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = def.NumWorkers
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = def.BufferSize
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}

	p := &AsyncPersister{
		store:        store,
		queues:       make([]chan persistJob, cfg.NumWorkers),
		writeTimeout: cfg.WriteTimeout,
	}
	for i := range p.queues {
		p.queues[i] = make(chan persistJob, cfg.BufferSize)
		p.wg.Add(1)
		go p.worker(p.queues[i])
	}
	return p
}

func (p *AsyncPersister) worker(queue <-chan persistJob) {
	defer p.wg.Done()
	for job := range queue {
		ctx, cancel := writeContext(job.ctx, p.writeTimeout)
		if err := write(ctx, p.store, job.key, job.state); err != nil {
			atomic.AddInt64(&p.failed, 1)
		} else {
			atomic.AddInt64(&p.written, 1)
		}
		cancel()
	}
}

// Persist enqueues a write. It never blocks.
func (p *AsyncPersister) Persist(ctx context.Context, key string, state cart.State) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		p.drop(ctx, key, "persister stopped")
		return
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	queue := p.queues[h.Sum32()%uint32(len(p.queues))]

	select {
	case queue <- persistJob{ctx: context.WithoutCancel(ctx), key: key, state: state}:
		atomic.AddInt64(&p.enqueued, 1)
	default:
		p.drop(ctx, key, "queue full")
	}
}

func (p *AsyncPersister) drop(ctx context.Context, key, reason string) {
	atomic.AddInt64(&p.dropped, 1)
	metrics.RecordPersistenceWrite("dropped", 0)
	log := logger.FromContext(ctx)
	log.Warn().
		Err(ErrPersistenceWriteFailed).
		Str("key", key).
		Str("reason", reason).
		Msg("Cart write dropped")
}

// Stop drains queued writes and waits for the workers to exit.
func (p *AsyncPersister) Stop() {
	p.stopOnce.Do(func() {
		p.mu.Lock()
		p.stopped = true
		for _, q := range p.queues {
			close(q)
		}
		p.mu.Unlock()
		p.wg.Wait()
	})
}

// Stats returns persister counters.
func (p *AsyncPersister) Stats() (enqueued, dropped, written, failed int64) {
	return atomic.LoadInt64(&p.enqueued),
		atomic.LoadInt64(&p.dropped),
		atomic.LoadInt64(&p.written),
		atomic.LoadInt64(&p.failed)
}

// writeContext drops request cancellation but keeps request-scoped values.
func writeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func write(ctx context.Context, store repository.CartStore, key string, state cart.State) error {
	start := time.Now()
	data, err := cart.Marshal(state)
	if err == nil {
		err = store.Save(ctx, key, data)
	}
	elapsed := time.Since(start)

	if err != nil {
		err = fmt.Errorf("%w: %w", ErrPersistenceWriteFailed, err)
		metrics.RecordPersistenceWrite("error", elapsed)
		log := logger.FromContext(ctx)
		log.Error().
			Err(err).
			Str("key", key).
			Dur("duration", elapsed).
			Msg("Failed to persist cart")
		return err
	}
	metrics.RecordPersistenceWrite("success", elapsed)
	return nil
}
