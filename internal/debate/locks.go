package debate

import "sync"

// lockTable hands out one mutex per conversation identifier so exchanges on
// the same conversation are serialized while different conversations run in
// parallel. Entries are refcounted and dropped once unused, so the table does
// not grow with conversation count.
type lockTable struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[string]*lockEntry)}
}

func (t *lockTable) acquire(id string) {
	t.mu.Lock()
	e, ok := t.locks[id]
	if !ok {
		e = &lockEntry{}
		t.locks[id] = e
	}
	e.refs++
	t.mu.Unlock()
	e.mu.Lock()
}

func (t *lockTable) release(id string) {
	t.mu.Lock()
	e := t.locks[id]
	e.refs--
	if e.refs == 0 {
		delete(t.locks, id)
	}
	t.mu.Unlock()
	e.mu.Unlock()
}
