package hooks

import (
	"sync"

	"github.com/google/uuid"
)

// Txn carries values between the extension points of a single save. The
// host creates one per save and passes it to both before_persist and
// pre_save, so values staged by one request are never seen by another.
type Txn struct {
	id     string
	mu     sync.Mutex
	staged map[string]interface{}
}

func NewTxn() *Txn {
	return &Txn{id: uuid.NewString(), staged: make(map[string]interface{})}
}

// ID identifies the save for logging.
func (t *Txn) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Stage stores v under key, replacing any earlier value.
func (t *Txn) Stage(key string, v interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.staged[key] = v
}

// Take returns and removes the value under key. A nil Txn holds nothing.
func (t *Txn) Take(key string) (interface{}, bool) {
	if t == nil {
		return nil, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.staged[key]
	if ok {
		delete(t.staged, key)
	}
	return v, ok
}
