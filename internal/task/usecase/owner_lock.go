package usecase

import "sync"

// ownerLocks serializes creation per owner. The conflict check and the
// insert are two store round trips with no enclosing transaction, so without
// this two concurrent creations could both pass the check and double-book
// the slot.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: map[string]*sync.Mutex{}}
}

func (o *ownerLocks) forOwner(ownerID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()
	l, ok := o.locks[ownerID]
	if !ok {
		l = &sync.Mutex{}
		o.locks[ownerID] = l
	}
	return l
}
