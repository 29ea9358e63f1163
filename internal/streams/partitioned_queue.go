package streams

import (
	"context"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"sync"
	"time"
)

const (
	defaultNumPartitions = 8
	defaultBuffer        = 1024

	publishRetryInterval = 2 * time.Millisecond
)

// ErrExceedsCapacity is returned when a publish needs more slots in one partition than its buffer holds.
var ErrExceedsCapacity = errors.New("messages exceed partition capacity")

// PartitionedQueue fans messages out over a fixed set of buffered channels. Messages with the
// same partition key always land on the same channel.
type PartitionedQueue[T any] struct {
	partitions []chan T

	// serializes publishers so capacity checked under it cannot be taken by another publisher
	mu sync.Mutex
}

// NewPartitionedQueue returns a queue with 8 partitions of 1024 buffered messages each.
func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueWithSize[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueWithSize[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	channels := make([]chan T, max(numPartitions, 1))
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// Publish enqueues msg, waiting while its partition is full until ctx is done.
func (queue *PartitionedQueue[T]) Publish(ctx context.Context, partitionKey string, msg T) error {
	return queue.PublishAll(ctx, []string{partitionKey}, []T{msg})
}

// PublishAll enqueues msgs[i] under keys[i] all or nothing: it waits until every target
// partition has room for its share, then enqueues them together. On error nothing was enqueued.
func (queue *PartitionedQueue[T]) PublishAll(ctx context.Context, keys []string, msgs []T) error {
	if len(keys) != len(msgs) {
		return errors.New("keys and messages differ in length")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	targets := make([]int, len(keys))
	need := make(map[int]int, len(keys))
	for i, key := range keys {
		targets[i] = partitionIndex(key, len(queue.partitions))
		need[targets[i]]++
	}
	for idx, n := range need {
		if n > cap(queue.partitions[idx]) {
			return ErrExceedsCapacity
		}
	}

	for {
		if queue.tryEnqueue(targets, need, msgs) {
			return nil
		}

		timer := time.NewTimer(publishRetryInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryEnqueue sends every message if all partitions have room. Consumers only drain, so
// the sends cannot block once the check passed under the lock.
func (queue *PartitionedQueue[T]) tryEnqueue(targets []int, need map[int]int, msgs []T) bool {
	queue.mu.Lock()
	defer queue.mu.Unlock()

	for idx, n := range need {
		ch := queue.partitions[idx]
		if cap(ch)-len(ch) < n {
			return false
		}
	}
	for i, msg := range msgs {
		queue.partitions[targets[i]] <- msg
	}
	return true
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	v := binary.LittleEndian.Uint32(hash.Sum(nil))
	return int(v % uint32(n))
}
