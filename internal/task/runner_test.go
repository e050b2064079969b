package task

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestGo_RunsTaskAndWaitDrains(t *testing.T) {
	runner := NewRunner(quietLogger(), 0)

	var ran atomic.Bool
	runner.Go("probe", func(ctx context.Context) error {
		ran.Store(true)
		return nil
	})
	runner.Wait()

	if !ran.Load() {
		t.Fatal("Expected task to run before Wait returned")
	}
}

func TestGo_TaskErrorDoesNotPropagate(t *testing.T) {
	runner := NewRunner(quietLogger(), 0)

	runner.Go("failing", func(ctx context.Context) error {
		return errors.New("remote unreachable")
	})
	runner.Wait()
	// Reaching here without a panic is the contract: errors go to the log.
}

func TestGo_AppliesTimeout(t *testing.T) {
	runner := NewRunner(quietLogger(), 10*time.Millisecond)

	done := make(chan error, 1)
	runner.Go("slow", func(ctx context.Context) error {
		<-ctx.Done()
		done <- ctx.Err()
		return ctx.Err()
	})
	runner.Wait()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("Expected deadline exceeded, got %v", err)
		}
	default:
		t.Fatal("Expected task context to be cancelled")
	}
}
