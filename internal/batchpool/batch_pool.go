// Package batchpool bounds the number of in-flight title-generation cycles.
// Batch runs use a pool of size 1: the next document's request is not issued
// until the previous one's full cycle completes or fails, which keeps load on
// the remote API at a single request at a time.
package batchpool

import (
	"context"
	"sync"
)

type Pool struct {
	slots chan struct{}
	wg    sync.WaitGroup
}

// New creates a pool admitting at most size concurrent cycles. Sizes below 1
// are clamped to 1.
func New(size int) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{slots: make(chan struct{}, size)}
}

// Acquire blocks until a slot is free or the context is cancelled. Every
// successful Acquire must be paired with a Release.
func (p *Pool) Acquire(ctx context.Context) error {
	select {
	case p.slots <- struct{}{}:
		p.wg.Add(1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release frees the slot taken by a previous Acquire.
func (p *Pool) Release() {
	<-p.slots
	p.wg.Done()
}

// Wait blocks until every acquired slot has been released.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// InFlight reports how many slots are currently held.
func (p *Pool) InFlight() int {
	return len(p.slots)
}
