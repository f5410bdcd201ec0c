package emulator

import "sync"

type fault struct {
	status    int
	code      string
	remaining int
}

// faultInjector fails the next requests with a fixed status and code.
type faultInjector struct {
	mu      sync.Mutex
	pending []fault
	hits    int
}

func (f *faultInjector) add(status int, code string, n int) {
	if n <= 0 {
		return
	}
	f.mu.Lock()
	f.pending = append(f.pending, fault{status: status, code: code, remaining: n})
	f.mu.Unlock()
}

// next returns the fault to apply to the current request, if any.
func (f *faultInjector) next() (fault, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.pending) == 0 {
		return fault{}, false
	}
	current := f.pending[0]
	f.pending[0].remaining--
	if f.pending[0].remaining == 0 {
		f.pending = f.pending[1:]
	}
	f.hits++
	return current, true
}

func (f *faultInjector) injected() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits
}
