package dynamotelemetry

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// projectionUsage reports whether a read asked for specific attributes and how many top-level
// paths it named.
func projectionUsage(projectionExpression *string, attributesToGet []string, selectAttrs types.Select) (used bool, count *int) {
	if len(attributesToGet) > 0 {
		n := len(attributesToGet)
		return true, &n
	}

	expr := ""
	if projectionExpression != nil {
		expr = strings.TrimSpace(*projectionExpression)
	}
	if expr == "" {
		return selectAttrs == types.SelectSpecificAttributes || selectAttrs == types.SelectCount, nil
	}

	n := 0
	for _, path := range strings.Split(expr, ",") {
		if strings.TrimSpace(path) != "" {
			n++
		}
	}
	return true, &n
}
