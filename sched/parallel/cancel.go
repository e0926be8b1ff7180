package parallel

import "sync"

// Signal is a monotonic, one-shot cancellation flag shared by every
// worker in a run: once any worker observes an infeasible verdict, it
// fires the signal and every other worker's simulator notices it on
// its next tick and gives up with CANNOT_TELL rather than continuing
// to burn CPU on a result that cannot change the outcome.
//
// Grounded on the original driver's threading.Event (main.py,
// myglobal.global_stop_flag), adapted to the teacher's channel-based
// idiom for signalling completion/cancellation (sim workers communicate
// over channels rather than shared mutable flags).
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal returns an unfired Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Fire closes the signal's channel exactly once. Safe to call from
// multiple goroutines and more than once.
func (s *Signal) Fire() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel that is closed once Fire has been called.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}
