package dynamotelemetry

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"dynamo-insights/internal/models"
)

type capacityTotals struct {
	read, write float64
	seen        bool
}

// add folds one ConsumedCapacity into the totals. Totals reported by the service already
// include index capacity; the table and index breakdown is only summed when no total is set.
func (c *capacityTotals) add(cc *types.ConsumedCapacity, op models.OperationType) {
	if cc == nil {
		return
	}

	switch {
	case cc.ReadCapacityUnits != nil || cc.WriteCapacityUnits != nil:
		c.read += aws.ToFloat64(cc.ReadCapacityUnits)
		c.write += aws.ToFloat64(cc.WriteCapacityUnits)
		c.seen = true
	case cc.CapacityUnits != nil:
		c.addUnits(aws.ToFloat64(cc.CapacityUnits), op)
	default:
		c.addBreakdown(cc.Table, op)
		for _, capacity := range cc.GlobalSecondaryIndexes {
			c.addBreakdown(&capacity, op)
		}
		for _, capacity := range cc.LocalSecondaryIndexes {
			c.addBreakdown(&capacity, op)
		}
	}
}

func (c *capacityTotals) addBreakdown(capacity *types.Capacity, op models.OperationType) {
	if capacity == nil {
		return
	}
	if capacity.ReadCapacityUnits != nil || capacity.WriteCapacityUnits != nil {
		c.read += aws.ToFloat64(capacity.ReadCapacityUnits)
		c.write += aws.ToFloat64(capacity.WriteCapacityUnits)
		c.seen = true
		return
	}
	if capacity.CapacityUnits != nil {
		c.addUnits(aws.ToFloat64(capacity.CapacityUnits), op)
	}
}

// addUnits attributes an undifferentiated total to the side the operation works on.
func (c *capacityTotals) addUnits(units float64, op models.OperationType) {
	if op.IsRead() {
		c.read += units
	} else {
		c.write += units
	}
	c.seen = true
}

// apply sets the record's consumed units. Without any capacity data both stay absent; a
// read-only operation never reports write units and vice versa unless the service said so.
func (c *capacityTotals) apply(r *models.OperationRecord) {
	if !c.seen {
		return
	}
	if c.read > 0 || r.Operation.IsRead() {
		r.ConsumedReadUnits = models.Ptr(c.read)
	}
	if c.write > 0 || !r.Operation.IsRead() {
		r.ConsumedWriteUnits = models.Ptr(c.write)
	}
}

func consumedCapacity(op models.OperationType, capacities ...*types.ConsumedCapacity) capacityTotals {
	var totals capacityTotals
	for _, cc := range capacities {
		totals.add(cc, op)
	}
	return totals
}

func consumedCapacityList(op models.OperationType, capacities []types.ConsumedCapacity) capacityTotals {
	var totals capacityTotals
	for i := range capacities {
		totals.add(&capacities[i], op)
	}
	return totals
}
