package streams

import (
	"context"
	"time"

	"dynamo-insights/internal/events"
	"dynamo-insights/internal/models"
)

// OperationRecordProducer publishes ingested records to a partitioned queue, one
// OperationRecordedEvent per resource in a batch. A batch is enqueued all or nothing.
//
// The partition key is the record's resource name, so every record of a table lands in the
// same partition and is handed to the collector by a single worker in submission order.
// Different tables are recorded in parallel.
//
//go:generate mockgen -source=operation_record_producer.go -destination=./mocks/operation_record_producer_mock.go -package=mocks
type OperationRecordProducer interface {
	Produce(ctx context.Context, batchID string, records []models.OperationRecord) error
}

type operationRecordProducer struct {
	queue *PartitionedQueue[events.OperationRecordedEvent]
}

func NewOperationRecordProducer(queue *PartitionedQueue[events.OperationRecordedEvent]) OperationRecordProducer {
	return &operationRecordProducer{
		queue: queue,
	}
}

// Produce groups records by resource name, preserving their order, and enqueues one event
// per resource as a single unit. On error no record of the batch was enqueued.
func (producer *operationRecordProducer) Produce(ctx context.Context, batchID string, records []models.OperationRecord) error {
	receivedAt := time.Now().UTC()

	var (
		keys   []string
		batch  []events.OperationRecordedEvent
		byName = make(map[string]int)
	)
	for i := range records {
		name := records[i].ResourceName
		idx, ok := byName[name]
		if !ok {
			idx = len(batch)
			byName[name] = idx
			keys = append(keys, name)
			batch = append(batch, events.OperationRecordedEvent{
				BatchID:      batchID,
				ReceivedAt:   receivedAt,
				ResourceName: name,
			})
		}
		batch[idx].Records = append(batch[idx].Records, records[i])
	}

	if err := producer.queue.PublishAll(ctx, keys, batch); err != nil {
		return err
	}
	metricEventsPublishedTotal.WithLabelValues(streamOperationRecorded).Add(float64(len(batch)))
	return nil
}
