package locker

import (
	"simeis/pkg/logger"
	"sync"
)

// KeyedLocker :
// Provides a per-key mutex registry: callers Acquire a lock identified
// by an arbitrary string key and get back the same *Lock every time
// they ask for that key, created lazily on first use. Unlike a bounded
// pool, a key's lock is never reclaimed or handed to a different key:
// the set of keys (one per player, for the per-player syslog FIFO) is
// known to be small and stable for the lifetime of the process, so
// there is nothing to reclaim.
//
// The `locker` guards the registry map itself while a per-key lookup
// or insertion is in progress; it is never held while a caller holds
// one of the per-key locks.
//
// The `locks` maps a resource key to its dedicated lock.
//
// The `cout` notifies the user of registry activity.
type KeyedLocker struct {
	locker sync.Mutex
	locks  map[string]*Lock
	cout   logger.Logger
}

// Lock :
// A single named mutex handed out by a `KeyedLocker`.
type Lock struct {
	res string
	mu  sync.Mutex
}

// NewKeyedLocker :
// An empty registry, ready to hand out per-key locks on demand.
//
// The `log` is used to notify registry activity.
//
// Returns the created registry.
func NewKeyedLocker(log logger.Logger) *KeyedLocker {
	return &KeyedLocker{
		locks: make(map[string]*Lock),
		cout:  log,
	}
}

// Acquire :
// Returns the lock registered for `resource`, creating it if this is
// the first time this key is seen. The returned lock is not itself
// locked; the caller still needs to call `Lock` on it.
func (kl *KeyedLocker) Acquire(resource string) *Lock {
	kl.locker.Lock()
	defer kl.locker.Unlock()

	if l, ok := kl.locks[resource]; ok {
		return l
	}

	l := &Lock{res: resource}
	kl.locks[resource] = l
	if kl.cout != nil {
		kl.cout.Trace(logger.Debug, "locker", "registering new keyed lock for \""+resource+"\"")
	}
	return l
}

// Lock :
// Waits to acquire exclusive access to the resource behind this lock.
func (l *Lock) Lock() {
	l.mu.Lock()
}

// Unlock :
// Releases exclusive access to the resource behind this lock.
func (l *Lock) Unlock() {
	l.mu.Unlock()
}
