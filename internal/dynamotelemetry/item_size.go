package dynamotelemetry

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EstimateItemSize approximates the stored size of an item in bytes using the published
// sizing rules: attribute names count in UTF-8 bytes, numbers take one byte per two
// significant digits plus one, and lists and maps carry three bytes of overhead plus one
// byte per element.
func EstimateItemSize(item map[string]types.AttributeValue) int64 {
	var size int64
	for name, value := range item {
		size += int64(len(name)) + attributeValueSize(value)
	}
	return size
}

func attributeValueSize(value types.AttributeValue) int64 {
	switch v := value.(type) {
	case *types.AttributeValueMemberS:
		return int64(len(v.Value))
	case *types.AttributeValueMemberN:
		return numberSize(v.Value)
	case *types.AttributeValueMemberB:
		return int64(len(v.Value))
	case *types.AttributeValueMemberBOOL, *types.AttributeValueMemberNULL:
		return 1
	case *types.AttributeValueMemberSS:
		var size int64
		for _, s := range v.Value {
			size += int64(len(s))
		}
		return size
	case *types.AttributeValueMemberNS:
		var size int64
		for _, n := range v.Value {
			size += numberSize(n)
		}
		return size
	case *types.AttributeValueMemberBS:
		var size int64
		for _, b := range v.Value {
			size += int64(len(b))
		}
		return size
	case *types.AttributeValueMemberL:
		size := int64(3)
		for _, elem := range v.Value {
			size += 1 + attributeValueSize(elem)
		}
		return size
	case *types.AttributeValueMemberM:
		size := int64(3)
		for name, elem := range v.Value {
			size += 1 + int64(len(name)) + attributeValueSize(elem)
		}
		return size
	}
	return 0
}

func numberSize(n string) int64 {
	digits := n
	if mantissa, _, found := strings.Cut(strings.ToLower(digits), "e"); found {
		digits = mantissa
	}
	digits = strings.TrimLeft(digits, "+-")
	digits = strings.Replace(digits, ".", "", 1)
	digits = strings.Trim(digits, "0")
	if digits == "" {
		return 1
	}
	return int64((len(digits)+1)/2) + 1
}
