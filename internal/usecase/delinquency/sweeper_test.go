package delinquency

import (
	"context"
	"errors"
	"testing"
	"time"

	"loan-ledger/internal/domain/uow"
	"loan-ledger/internal/testutil/uowmock"
)

func TestSweeper_RunsImmediatelyAndStops(t *testing.T) {
	ran := make(chan struct{}, 8)
	tx := uowmock.New().WithWithinTx(func(context.Context, func(uow.Repos) error) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return errors.New("store unavailable")
	})

	s := NewSweeper(NewUsecase(tx), time.Hour)
	s.Start()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not run on start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSweeper_Ticks(t *testing.T) {
	ran := make(chan struct{}, 64)
	tx := uowmock.New().WithWithinTx(func(context.Context, func(uow.Repos) error) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s := NewSweeper(NewUsecase(tx), 10*time.Millisecond)
	s.Start()
	defer s.Stop()

	for i := 0; i < 3; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("sweep #%d did not happen", i+1)
		}
	}
}
