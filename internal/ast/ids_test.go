package ast

import (
	"sync"
	"testing"
)

func TestNextIDStrictlyIncreasing(t *testing.T) {
	prev := NextID()
	for range 1000 {
		id := NextID()
		if id <= prev {
			t.Fatalf("NextID not increasing: %d after %d", id, prev)
		}
		prev = id
	}
}

func TestNextIDNeverNull(t *testing.T) {
	for range 100 {
		if !NextID().IsValid() {
			t.Fatal("NextID returned the null identity")
		}
	}
	if NoNodeID.IsValid() {
		t.Fatal("NoNodeID must not be valid")
	}
}

func TestNextIDConcurrentUnique(t *testing.T) {
	const workers, perWorker = 16, 2000

	results := make([][]NodeID, workers)
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]NodeID, 0, perWorker)
			for range perWorker {
				ids = append(ids, NextID())
			}
			results[w] = ids
		}()
	}
	wg.Wait()

	seen := make(map[NodeID]struct{}, workers*perWorker)
	for _, ids := range results {
		for i, id := range ids {
			// внутри одного потока порядок тоже строго возрастающий
			if i > 0 && id <= ids[i-1] {
				t.Fatalf("per-goroutine order broken: %d after %d", id, ids[i-1])
			}
			if _, dup := seen[id]; dup {
				t.Fatalf("duplicate identity %d", id)
			}
			seen[id] = struct{}{}
		}
	}
}
