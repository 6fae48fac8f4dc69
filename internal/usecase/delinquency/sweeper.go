package delinquency

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sweeper runs Sweep in the background on a fixed interval.
type Sweeper struct {
	uc       *Usecase
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

func NewSweeper(uc *Usecase, interval time.Duration) *Sweeper {
	return &Sweeper{
		uc:       uc,
		interval: interval,
		timeout:  time.Minute,
		stopCh:   make(chan struct{}),
	}
}

// Start sweeps once immediately, then on every tick until Stop.
func (s *Sweeper) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
}

// Stop waits for an in-flight sweep to finish. Safe to call twice.
func (s *Sweeper) Stop() {
	s.once.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

func (s *Sweeper) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce()
	for {
		select {
		case <-ticker.C:
			s.runOnce()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Sweeper) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	res, err := s.uc.Sweep(ctx)
	if err != nil {
		log.Printf("delinquency sweep failed: %v", err)
		return
	}
	if res.Marked > 0 {
		log.Printf("delinquency sweep: %d loan(s) marked delinquent", res.Marked)
	}
}
