package dynamotelemetry

import (
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// KeySchema names the key attributes of a table.
type KeySchema struct {
	PartitionKey string
	SortKey      string
}

// conventional single-table key names tried when a table has no configured schema
var conventionalKeySchemas = []KeySchema{
	{PartitionKey: "PK", SortKey: "SK"},
	{PartitionKey: "pk", SortKey: "sk"},
}

// keyValues extracts the partition and sort key values of a key or item. Without a schema a
// single-attribute key is taken as the partition key and the conventional PK/SK names are tried
// otherwise. Unknown layouts yield empty strings.
func keyValues(attrs map[string]types.AttributeValue, schema *KeySchema) (partitionKey, sortKey string) {
	if len(attrs) == 0 {
		return "", ""
	}

	if schema != nil {
		return keyString(attrs[schema.PartitionKey]), keyString(attrs[schema.SortKey])
	}

	if len(attrs) == 1 {
		for _, value := range attrs {
			return keyString(value), ""
		}
	}

	for _, candidate := range conventionalKeySchemas {
		if pk, ok := attrs[candidate.PartitionKey]; ok {
			return keyString(pk), keyString(attrs[candidate.SortKey])
		}
	}
	return "", ""
}

// keyString renders a key attribute value. Key attributes are scalar strings, numbers or binary.
func keyString(value types.AttributeValue) string {
	switch v := value.(type) {
	case nil:
		return ""
	case *types.AttributeValueMemberN:
		// keep the exact decimal text rather than a float rendering
		return v.Value
	case *types.AttributeValueMemberB:
		return base64.StdEncoding.EncodeToString(v.Value)
	}

	var decoded any
	if err := attributevalue.Unmarshal(value, &decoded); err != nil {
		return ""
	}
	return fmt.Sprint(decoded)
}
