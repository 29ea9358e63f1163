package dynamotelemetry

import (
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"dynamo-insights/internal/models"
)

// RecordBuilder converts SDK requests and responses into operation records. Timing and the
// access pattern are left to the caller.
type RecordBuilder struct {
	// KeySchemas maps table names to their key attributes. Tables without an entry fall back
	// to single-attribute keys and the conventional PK/SK names.
	KeySchemas map[string]KeySchema
}

func (b *RecordBuilder) schema(table string) *KeySchema {
	if schema, ok := b.KeySchemas[table]; ok {
		return &schema
	}
	return nil
}

func (b *RecordBuilder) withKeys(r *models.OperationRecord, key map[string]types.AttributeValue) {
	r.PartitionKeyValue, r.SortKeyValue = keyValues(key, b.schema(r.ResourceName))
}

func (b *RecordBuilder) GetItem(in *dynamodb.GetItemInput, out *dynamodb.GetItemOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:    models.OperationGet,
		ResourceName: aws.ToString(in.TableName),
	}
	b.withKeys(&r, in.Key)
	setProjection(&r, in.ProjectionExpression, in.AttributesToGet, "")

	if out != nil {
		if out.Item != nil {
			r.ItemCount = 1
			r.ItemSizeBytes = models.Ptr(EstimateItemSize(out.Item))
		}
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) PutItem(in *dynamodb.PutItemInput, out *dynamodb.PutItemOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:     models.OperationPut,
		ResourceName:  aws.ToString(in.TableName),
		ItemCount:     1,
		ItemSizeBytes: models.Ptr(EstimateItemSize(in.Item)),
	}
	b.withKeys(&r, in.Item)

	if out != nil {
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) UpdateItem(in *dynamodb.UpdateItemInput, out *dynamodb.UpdateItemOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:    models.OperationUpdate,
		ResourceName: aws.ToString(in.TableName),
		ItemCount:    1,
	}
	b.withKeys(&r, in.Key)

	if out != nil {
		if out.Attributes != nil {
			r.ItemSizeBytes = models.Ptr(EstimateItemSize(out.Attributes))
		}
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) DeleteItem(in *dynamodb.DeleteItemInput, out *dynamodb.DeleteItemOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:    models.OperationDelete,
		ResourceName: aws.ToString(in.TableName),
		ItemCount:    1,
	}
	b.withKeys(&r, in.Key)

	if out != nil {
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) Query(in *dynamodb.QueryInput, out *dynamodb.QueryOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:    models.OperationQuery,
		ResourceName: aws.ToString(in.TableName),
		IndexName:    aws.ToString(in.IndexName),
	}
	setProjection(&r, in.ProjectionExpression, in.AttributesToGet, in.Select)

	if out != nil {
		r.ItemCount = int(out.Count)
		r.ScannedCount = models.Ptr(int(out.ScannedCount))
		r.ItemSizeBytes = largestItemSize(out.Items)
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) Scan(in *dynamodb.ScanInput, out *dynamodb.ScanOutput) models.OperationRecord {
	r := models.OperationRecord{
		Operation:    models.OperationScan,
		ResourceName: aws.ToString(in.TableName),
		IndexName:    aws.ToString(in.IndexName),
	}
	setProjection(&r, in.ProjectionExpression, in.AttributesToGet, in.Select)

	if out != nil {
		r.ItemCount = int(out.Count)
		r.ScannedCount = models.Ptr(int(out.ScannedCount))
		r.ItemSizeBytes = largestItemSize(out.Items)
		totals := consumedCapacity(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

// BatchGetItem records the whole batch as one operation. A batch spanning several tables is
// attributed to their sorted, comma-joined names. Projection counts as used only when every
// table in the batch asked for specific attributes.
func (b *RecordBuilder) BatchGetItem(in *dynamodb.BatchGetItemInput, out *dynamodb.BatchGetItemOutput) models.OperationRecord {
	tables := make([]string, 0, len(in.RequestItems))
	allProjected := len(in.RequestItems) > 0
	var keys []map[string]types.AttributeValue
	for table, request := range in.RequestItems {
		tables = append(tables, table)
		keys = append(keys, request.Keys...)
		if used, _ := projectionUsage(request.ProjectionExpression, request.AttributesToGet, ""); !used {
			allProjected = false
		}
	}

	r := models.OperationRecord{
		Operation:      models.OperationBatchGet,
		ResourceName:   joinTables(tables),
		UsedProjection: models.Ptr(allProjected),
	}
	if len(tables) == 1 && len(keys) == 1 {
		b.withKeys(&r, keys[0])
	}

	if out != nil {
		var items []map[string]types.AttributeValue
		for _, responses := range out.Responses {
			items = append(items, responses...)
		}
		r.ItemCount = len(items)
		r.ItemSizeBytes = largestItemSize(items)
		totals := consumedCapacityList(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) BatchWriteItem(in *dynamodb.BatchWriteItemInput, out *dynamodb.BatchWriteItemOutput) models.OperationRecord {
	tables := make([]string, 0, len(in.RequestItems))
	var items []map[string]types.AttributeValue
	count := 0
	for table, requests := range in.RequestItems {
		tables = append(tables, table)
		count += len(requests)
		for _, request := range requests {
			if request.PutRequest != nil {
				items = append(items, request.PutRequest.Item)
			}
		}
	}

	r := models.OperationRecord{
		Operation:     models.OperationBatchWrite,
		ResourceName:  joinTables(tables),
		ItemCount:     count,
		ItemSizeBytes: largestItemSize(items),
	}

	if out != nil {
		totals := consumedCapacityList(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) TransactWriteItems(in *dynamodb.TransactWriteItemsInput, out *dynamodb.TransactWriteItemsOutput) models.OperationRecord {
	tables := make([]string, 0, len(in.TransactItems))
	var items []map[string]types.AttributeValue
	for _, item := range in.TransactItems {
		switch {
		case item.Put != nil:
			tables = append(tables, aws.ToString(item.Put.TableName))
			items = append(items, item.Put.Item)
		case item.Update != nil:
			tables = append(tables, aws.ToString(item.Update.TableName))
		case item.Delete != nil:
			tables = append(tables, aws.ToString(item.Delete.TableName))
		case item.ConditionCheck != nil:
			tables = append(tables, aws.ToString(item.ConditionCheck.TableName))
		}
	}

	r := models.OperationRecord{
		Operation:     models.OperationTransactWrite,
		ResourceName:  joinTables(tables),
		ItemCount:     len(in.TransactItems),
		ItemSizeBytes: largestItemSize(items),
	}

	if out != nil {
		totals := consumedCapacityList(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func (b *RecordBuilder) TransactGetItems(in *dynamodb.TransactGetItemsInput, out *dynamodb.TransactGetItemsOutput) models.OperationRecord {
	tables := make([]string, 0, len(in.TransactItems))
	allProjected := len(in.TransactItems) > 0
	for _, item := range in.TransactItems {
		if item.Get == nil {
			continue
		}
		tables = append(tables, aws.ToString(item.Get.TableName))
		if used, _ := projectionUsage(item.Get.ProjectionExpression, nil, ""); !used {
			allProjected = false
		}
	}

	r := models.OperationRecord{
		Operation:      models.OperationTransactGet,
		ResourceName:   joinTables(tables),
		UsedProjection: models.Ptr(allProjected),
	}

	if out != nil {
		var items []map[string]types.AttributeValue
		for _, response := range out.Responses {
			if response.Item != nil {
				items = append(items, response.Item)
			}
		}
		r.ItemCount = len(items)
		r.ItemSizeBytes = largestItemSize(items)
		totals := consumedCapacityList(r.Operation, out.ConsumedCapacity)
		totals.apply(&r)
	}
	return r
}

func setProjection(r *models.OperationRecord, expr *string, attributesToGet []string, selectAttrs types.Select) {
	used, count := projectionUsage(expr, attributesToGet, selectAttrs)
	r.UsedProjection = models.Ptr(used)
	r.ProjectedAttributeCount = count
}

// largestItemSize returns the estimated size of the biggest item, or nil when there are none.
func largestItemSize(items []map[string]types.AttributeValue) *int64 {
	if len(items) == 0 {
		return nil
	}
	var largest int64
	for _, item := range items {
		largest = max(largest, EstimateItemSize(item))
	}
	return &largest
}

func joinTables(tables []string) string {
	slices.Sort(tables)
	return strings.Join(slices.Compact(tables), ",")
}
