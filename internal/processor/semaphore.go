package processor

import "context"

// semaphore bounds how many conversions run at once
type semaphore struct {
	ch chan struct{}
}

func newSemaphore(capacity int) *semaphore {
	return &semaphore{
		ch: make(chan struct{}, capacity),
	}
}

// acquire blocks until a slot is free or ctx is done
func (s *semaphore) acquire(ctx context.Context) error {
	// Prefer reporting cancellation over taking a free slot
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	<-s.ch
}

// inUse reports the number of held slots
func (s *semaphore) inUse() int {
	return len(s.ch)
}
