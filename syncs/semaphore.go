package syncs

import "sync"

// Semaphore bounds the number of goroutines started by Go.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	if n < 1 {
		n = 1
	}
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}

// Go runs fn in a new goroutine once a slot is free.
func (s Semaphore) Go(wg *sync.WaitGroup, fn func()) {
	s.Acquire()
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer s.Release()
		fn()
	}()
}
