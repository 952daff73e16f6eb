package shared

import (
	"clinic/shared/constant"
	"clinic/shared/dto"
	"clinic/shared/failure"
	"fmt"
	"strconv"
	"strings"
)

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// ParseID parses a positive numeric identifier taken from a path or query parameter.
func ParseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(name + " must be a positive integer") //nolint:wrapcheck
	}

	return id, nil
}

// BuildCacheKey joins the prefix and parts with the cache key separator.
func BuildCacheKey(prefix string, parts ...any) string {
	builder := strings.Builder{}
	builder.WriteString(prefix)

	for _, part := range parts {
		builder.WriteString(constant.CacheKeySeparator)
		builder.WriteString(fmt.Sprint(part))
	}

	return builder.String()
}
