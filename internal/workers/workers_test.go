// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-mod-manager/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsTaskAndContinuation(t *testing.T) {
	p := NewPool(2, logger.Nop())

	var ran atomic.Bool
	var got error
	done := make(chan struct{})

	p.Submit(context.Background(), "ok", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}, func(err error) {
		got = err
		close(done)
	})

	<-done
	p.Wait()
	assert.True(t, ran.Load())
	assert.NoError(t, got)
}

func TestPool_ContinuationReceivesError(t *testing.T) {
	p := NewPool(1, logger.Nop())
	boom := errors.New("boom")

	var got error
	p.Submit(context.Background(), "fail", func(ctx context.Context) error {
		return boom
	}, func(err error) {
		got = err
	})
	p.Wait()

	assert.ErrorIs(t, got, boom)
}

func TestPool_RecoversPanics(t *testing.T) {
	p := NewPool(1, logger.Nop())

	var got error
	p.Submit(context.Background(), "panic", func(ctx context.Context) error {
		panic("bad")
	}, func(err error) {
		got = err
	})
	p.Wait()

	require.Error(t, got)
	assert.Contains(t, got.Error(), "task panic panicked: bad")
}

func TestPool_RespectsLimit(t *testing.T) {
	const size = 2
	p := NewPool(size, logger.Nop())

	var running, peak atomic.Int32
	for i := 0; i < 6; i++ {
		p.Submit(context.Background(), "limited", func(ctx context.Context) error {
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(10 * time.Millisecond)
			running.Add(-1)
			return nil
		}, nil)
	}
	p.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(size))
	assert.Positive(t, peak.Load())
}

func TestPool_IgnoresCallerCancellation(t *testing.T) {
	p := NewPool(1, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ctxErr error
	p.Submit(ctx, "detached", func(ctx context.Context) error {
		ctxErr = ctx.Err()
		return nil
	}, nil)
	p.Wait()

	assert.NoError(t, ctxErr)
}

func TestPool_WaitCoversChainedTasks(t *testing.T) {
	p := NewPool(1, logger.Nop())

	var mu sync.Mutex
	var order []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		order = append(order, s)
	}

	p.Submit(context.Background(), "first", func(ctx context.Context) error {
		record("first")
		return nil
	}, func(err error) {
		p.Submit(context.Background(), "second", func(ctx context.Context) error {
			record("second")
			return nil
		}, nil)
	})
	p.Wait()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestNewPool_MinimumSize(t *testing.T) {
	p := NewPool(0, logger.Nop())

	var ran atomic.Bool
	p.Submit(context.Background(), "one", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}, nil)
	p.Wait()

	assert.True(t, ran.Load())
}
