package syncs

import "context"

// Semaphore bounds the number of concurrent holders.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, max(n, 1))
}

func (s Semaphore) Acquire() {
	s <- true
}

// AcquireContext blocks until acquired or ctx is done.
func (s Semaphore) AcquireContext(ctx context.Context) error {
	select {
	case s <- true:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s Semaphore) Release() {
	<-s
}
