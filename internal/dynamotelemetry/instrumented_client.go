package dynamotelemetry

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"dynamo-insights/internal/models"
	"dynamo-insights/internal/shared/clock"
)

// DynamoDBAPI is the subset of *dynamodb.Client that can be instrumented.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error)
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
	TransactGetItems(ctx context.Context, params *dynamodb.TransactGetItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactGetItemsOutput, error)
}

// Recorder receives one record per completed operation. collectors.Collector satisfies it.
type Recorder interface {
	Record(r models.OperationRecord)
}

// Options configures an instrumented client.
type Options struct {
	KeySchemas map[string]KeySchema
}

type instrumentedClient struct {
	api      DynamoDBAPI
	recorder Recorder
	clock    clock.Clock
	builder  RecordBuilder
}

// NewInstrumentedClient wraps api so that every successful call is recorded. Requests are
// passed through untouched; failed calls are not recorded.
func NewInstrumentedClient(api DynamoDBAPI, recorder Recorder, clk clock.Clock, options Options) DynamoDBAPI {
	return &instrumentedClient{
		api:      api,
		recorder: recorder,
		clock:    clk,
		builder:  RecordBuilder{KeySchemas: options.KeySchemas},
	}
}

// observe runs call and records the result built from params and its output.
func observe[In, Out any](
	ctx context.Context,
	c *instrumentedClient,
	params *In,
	call func() (*Out, error),
	build func(*In, *Out) models.OperationRecord,
) (*Out, error) {
	start := c.clock.Now()
	out, err := call()
	if err != nil || params == nil {
		return out, err
	}
	elapsed := c.clock.Now().Sub(start)

	record := build(params, out)
	record.Timestamp = start.UnixMilli()
	record.LatencyMs = float64(elapsed.Microseconds()) / 1000
	record.AccessPattern = AccessPatternFrom(ctx)
	c.recorder.Record(record)
	return out, nil
}

func (c *instrumentedClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.GetItemOutput, error) {
		return c.api.GetItem(ctx, params, optFns...)
	}, c.builder.GetItem)
}

func (c *instrumentedClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.PutItemOutput, error) {
		return c.api.PutItem(ctx, params, optFns...)
	}, c.builder.PutItem)
}

func (c *instrumentedClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.UpdateItemOutput, error) {
		return c.api.UpdateItem(ctx, params, optFns...)
	}, c.builder.UpdateItem)
}

func (c *instrumentedClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.DeleteItemOutput, error) {
		return c.api.DeleteItem(ctx, params, optFns...)
	}, c.builder.DeleteItem)
}

func (c *instrumentedClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.QueryOutput, error) {
		return c.api.Query(ctx, params, optFns...)
	}, c.builder.Query)
}

func (c *instrumentedClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.ScanOutput, error) {
		return c.api.Scan(ctx, params, optFns...)
	}, c.builder.Scan)
}

func (c *instrumentedClient) BatchGetItem(ctx context.Context, params *dynamodb.BatchGetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.BatchGetItemOutput, error) {
		return c.api.BatchGetItem(ctx, params, optFns...)
	}, c.builder.BatchGetItem)
}

func (c *instrumentedClient) BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.BatchWriteItemOutput, error) {
		return c.api.BatchWriteItem(ctx, params, optFns...)
	}, c.builder.BatchWriteItem)
}

func (c *instrumentedClient) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.TransactWriteItemsOutput, error) {
		return c.api.TransactWriteItems(ctx, params, optFns...)
	}, c.builder.TransactWriteItems)
}

func (c *instrumentedClient) TransactGetItems(ctx context.Context, params *dynamodb.TransactGetItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactGetItemsOutput, error) {
	return observe(ctx, c, params, func() (*dynamodb.TransactGetItemsOutput, error) {
		return c.api.TransactGetItems(ctx, params, optFns...)
	}, c.builder.TransactGetItems)
}
