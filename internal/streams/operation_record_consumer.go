package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"dynamo-insights/internal/collectors"
	"dynamo-insights/internal/events"
	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/loggers"
	"dynamo-insights/internal/shared/metrics"
	"dynamo-insights/internal/shared/svcerrors"
)

//go:generate mockgen -source=operation_record_consumer.go -destination=./mocks/operation_record_consumer_mock.go -package=mocks
type OperationRecordConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type operationRecordConsumer struct {
	queue     *PartitionedQueue[events.OperationRecordedEvent]
	collector collectors.Collector

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewOperationRecordConsumer(queue *PartitionedQueue[events.OperationRecordedEvent], collector collectors.Collector, logger loggers.Logger) OperationRecordConsumer {
	return &operationRecordConsumer{
		queue:     queue,
		collector: collector,
		stopCh:    make(chan struct{}),
		logger:    logger,
	}
}

// Start spawns one worker goroutine per partition.
func (consumer *operationRecordConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partitions[partitionIndex]
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()

			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop (best called during app shutdown).
func (consumer *operationRecordConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *operationRecordConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.OperationRecordedEvent) {
	partitionID := strconv.Itoa(partitionIndex)
	logger := consumer.logger.With().
		Str(loggers.FieldPartitionId, partitionID).
		Logger()
	backlog := metricPartitionBacklog.WithLabelValues(streamOperationRecorded, partitionID)

	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			backlog.Set(float64(len(ch)))
			consumer.consume(&logger, event)
		}
	}
}

func (consumer *operationRecordConsumer) consume(logger *loggers.Logger, event events.OperationRecordedEvent) {
	metricEventLagSeconds.WithLabelValues(streamOperationRecorded).Observe(time.Since(event.ReceivedAt).Seconds())
	for i := range event.Records {
		consumer.record(logger, event.Records[i])
	}
	metricEventsConsumedTotal.WithLabelValues(streamOperationRecorded, metrics.ValueNoError).Inc()
}

// record hands one record to the collector. A panic loses only that record.
func (consumer *operationRecordConsumer) record(logger *loggers.Logger, r models.OperationRecord) {
	defer func() {
		if p := recover(); p != nil {
			panicErr, ok := p.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", p)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)

			logger.Error().
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldResourceName, r.ResourceName).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")
			metricEventsConsumedTotal.WithLabelValues(streamOperationRecorded, svcErr.Code).Inc()
		}
	}()

	consumer.collector.Record(r)
}
