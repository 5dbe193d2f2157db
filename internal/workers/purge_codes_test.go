package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notekeeper-app/notekeeper/internal/config"
	"github.com/notekeeper-app/notekeeper/internal/logger"
	"github.com/notekeeper-app/notekeeper/models"
)

// mockCodeRepository implements store.CodeRepository; only PurgeExpired is
// exercised by the worker.
type mockCodeRepository struct {
	purgeExpiredFn func(ctx context.Context, now time.Time) (int64, error)
}

func (m *mockCodeRepository) SaveCode(context.Context, models.VerificationCode) error {
	return nil
}

func (m *mockCodeRepository) GetCode(context.Context, int64, string) (models.VerificationCode, error) {
	return models.VerificationCode{}, nil
}

func (m *mockCodeRepository) DeleteCode(context.Context, int64, string) error {
	return nil
}

func (m *mockCodeRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	return m.purgeExpiredFn(ctx, now)
}

func TestCodePurgeWorker_PurgesOnInterval(t *testing.T) {
	calls := make(chan time.Time, 16)
	codes := &mockCodeRepository{
		purgeExpiredFn: func(_ context.Context, now time.Time) (int64, error) {
			calls <- now
			return 3, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewCodePurgeWorker(codes, config.Workers{PurgeInterval: 5 * time.Millisecond}, logger.Nop())
	w.Run(ctx)

	select {
	case now := <-calls:
		if now.IsZero() {
			t.Error("expected purge to receive the current time, got zero value")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected PurgeExpired to be called, but it was not")
	}
}

func TestCodePurgeWorker_StopsOnContextCancel(t *testing.T) {
	calls := make(chan struct{}, 16)
	codes := &mockCodeRepository{
		purgeExpiredFn: func(context.Context, time.Time) (int64, error) {
			calls <- struct{}{}
			return 0, nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := NewCodePurgeWorker(codes, config.Workers{PurgeInterval: 5 * time.Millisecond}, logger.Nop())
	w.Run(ctx)

	// Wait for the loop to spin at least once, then cancel it.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("expected PurgeExpired to be called before cancellation")
	}
	cancel()

	// Drain anything already in flight and make sure the loop goes quiet.
	time.Sleep(50 * time.Millisecond)
	for len(calls) > 0 {
		<-calls
	}
	time.Sleep(50 * time.Millisecond)

	if len(calls) != 0 {
		t.Errorf("expected no purges after cancellation, got %d", len(calls))
	}
}

func TestCodePurgeWorker_KeepsRunningAfterError(t *testing.T) {
	calls := make(chan struct{}, 16)
	codes := &mockCodeRepository{
		purgeExpiredFn: func(context.Context, time.Time) (int64, error) {
			calls <- struct{}{}
			return 0, errors.New("connection reset")
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewCodePurgeWorker(codes, config.Workers{PurgeInterval: 5 * time.Millisecond}, logger.Nop())
	w.Run(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected purge attempt %d despite earlier error", i+1)
		}
	}
}

func TestNewCodePurgeWorker_DefaultInterval(t *testing.T) {
	w := NewCodePurgeWorker(&mockCodeRepository{}, config.Workers{}, logger.Nop())

	purge, ok := w.(*codePurgeWorker)
	if !ok {
		t.Fatalf("expected *codePurgeWorker, got %T", w)
	}
	if purge.interval != defaultPurgeInterval {
		t.Errorf("expected default interval %v, got %v", defaultPurgeInterval, purge.interval)
	}
}
