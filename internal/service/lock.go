package service

import (
	"hash/fnv"
	"sync"
)

const lockShards = 64

// keyedMutex serializes multi-step write sequences per entity id.
// Snapshot-then-mutate and restore-then-delete are critical sections;
// without this, two concurrent edits can compute the same next version
// number. Sharded to bound memory regardless of entity count.
type keyedMutex struct {
	shards [lockShards]sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	mu := &k.shards[h.Sum32()%lockShards]
	mu.Lock()
	return mu.Unlock
}
