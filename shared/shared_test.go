package shared_test

import (
	"clinic/shared"
	"clinic/shared/dto"
	"clinic/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "plain", raw: "42", want: 42},
		{name: "padded", raw: " 7 ", want: 7},
		{name: "zero", raw: "0", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "word", raw: "abc", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shared.ParseID(tt.raw, "psychologistId")
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)

				return
			}

			require.Error(t, err)
			assert.Equal(t, "psychologistId must be a positive integer", err.Error())

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, failure.KindInvalidArgument, fail.Kind)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "availability", shared.BuildCacheKey("availability"))
	assert.Equal(t, "availability:5:2030-12-09", shared.BuildCacheKey("availability", int64(5), "2030-12-09"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(9), "id", "appointments")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(appointments.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(9)}, args)
	assert.IsType(t, dto.FilterGroup{}, filter)
}
