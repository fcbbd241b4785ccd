package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"tora-app.io/tora/internal/pkg/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init("error", "json")
	m.Run()
}

func TestSubmitRunsTask(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	done := make(chan struct{})
	if err := pools.Notify.Submit(context.Background(), func(ctx context.Context) {
		close(done)
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}

func TestSubmitRejectsCancelledContext(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = pools.General.Submit(ctx, func(ctx context.Context) {
		t.Error("task ran despite cancelled context")
	})
	if err == nil {
		t.Fatal("Submit() with cancelled context expected error")
	}
}

func TestSubmitDetachedSurvivesCallerReturn(t *testing.T) {
	pools, err := NewPools(context.Background(), DefaultPoolConfig())
	if err != nil {
		t.Fatalf("NewPools() error = %v", err)
	}
	defer pools.Shutdown()

	var mu sync.Mutex
	var gotCtx context.Context

	done := make(chan struct{})
	if err := pools.SubmitDetached("notify", func(ctx context.Context) {
		mu.Lock()
		gotCtx = ctx
		mu.Unlock()
		close(done)
	}); err != nil {
		t.Fatalf("SubmitDetached() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("detached task did not run")
	}

	mu.Lock()
	defer mu.Unlock()
	if gotCtx.Err() != nil {
		t.Fatalf("detached task context already cancelled: %v", gotCtx.Err())
	}
}
