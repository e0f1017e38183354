package debate

import (
	"sync"
	"testing"
)

func TestLockTable_SerializesSameID(t *testing.T) {
	table := newLockTable()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table.acquire("same")
			counter++
			table.release("same")
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Errorf("counter = %d, want 50 (lost update)", counter)
	}
}

func TestLockTable_DropsUnusedEntries(t *testing.T) {
	table := newLockTable()
	table.acquire("a")
	table.release("a")

	table.mu.Lock()
	defer table.mu.Unlock()
	if len(table.locks) != 0 {
		t.Errorf("expected empty table after release, got %d entries", len(table.locks))
	}
}
