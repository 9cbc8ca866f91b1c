package extract

import (
	"fmt"
	"sync"
)

// Names hands out unique grid names. A name that is already taken gets
// " (N)" appended, with N counting up from 1 until the result is free.
// It is safe for concurrent use.
type Names struct {
	mu   sync.Mutex
	used map[string]struct{}
}

// NewNames returns an empty name registry.
func NewNames() *Names {
	return &Names{used: make(map[string]struct{})}
}

// Claim registers and returns a unique name derived from name.
func (n *Names) Claim(name string) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := n.used[name]; !ok {
		n.used[name] = struct{}{}
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if _, ok := n.used[candidate]; !ok {
			n.used[candidate] = struct{}{}
			return candidate
		}
	}
}
