package streams

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionedQueue_SameKeySamePartition(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[string](4, 8)
	ctx := context.Background()

	require.NoError(t, queue.Publish(ctx, "orders", "a"))
	require.NoError(t, queue.Publish(ctx, "orders", "b"))

	ch := queue.partitions[partitionIndex("orders", 4)]
	require.Len(t, ch, 2)
	assert.Equal(t, "a", <-ch)
	assert.Equal(t, "b", <-ch)
}

func TestPartitionedQueue_PublishHonoursContextWhenFull(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := queue.Publish(ctx, "k", 2)

	require.ErrorIs(t, err, context.Canceled)
}

func TestPartitionedQueue_PublishAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		prefill   []string
		keys      []string
		wantErr   error
		wantQueue int
	}{
		{
			name:      "room in every partition",
			keys:      []string{"orders", "sessions", "orders"},
			wantQueue: 3,
		},
		{
			name:      "one full partition rejects the whole publish",
			prefill:   []string{"orders", "orders"},
			keys:      []string{"sessions", "orders"},
			wantErr:   context.DeadlineExceeded,
			wantQueue: 2,
		},
		{
			name:      "more messages than one partition holds",
			keys:      []string{"orders", "orders", "orders"},
			wantErr:   ErrExceedsCapacity,
			wantQueue: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// two partitions of two slots; "orders" and "sessions" must not share one
			queue := NewPartitionedQueueWithSize[string](2, 2)
			require.NotEqual(t, partitionIndex("orders", 2), partitionIndex("sessions", 2))
			for _, key := range tt.prefill {
				require.NoError(t, queue.Publish(context.Background(), key, "prefill"))
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
			defer cancel()
			err := queue.PublishAll(ctx, tt.keys, make([]string, len(tt.keys)))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			queued := 0
			for _, ch := range queue.partitions {
				queued += len(ch)
			}
			assert.Equal(t, tt.wantQueue, queued)
		})
	}
}

func TestPartitionedQueue_PublishAllWaitsForRoom(t *testing.T) {
	t.Parallel()

	queue := NewPartitionedQueueWithSize[int](1, 1)
	require.NoError(t, queue.Publish(context.Background(), "k", 1))

	go func() {
		time.Sleep(20 * time.Millisecond)
		<-queue.partitions[0]
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, queue.Publish(ctx, "k", 2))
	assert.Equal(t, 2, <-queue.partitions[0])
}

func TestPartitionedQueue_Defaults(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8, NewPartitionedQueue[int]().PartitionCount())
	assert.Equal(t, 1, NewPartitionedQueueWithSize[int](0, 1).PartitionCount())
}

func TestPartitionIndex_InRange(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "users", "orders", "a-much-longer-table-name"} {
		idx := partitionIndex(key, 8)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 8)
		assert.Equal(t, idx, partitionIndex(key, 8), "partitioning must be stable")
	}
}
