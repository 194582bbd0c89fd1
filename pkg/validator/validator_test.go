package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type createPropertyPayload struct {
	Name  string  `json:"name" validate:"required"`
	City  string  `json:"city" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func TestValidateStructPasses(t *testing.T) {
	err := ValidateStruct(createPropertyPayload{Name: "Sea View Villa", City: "Mumbai", Price: 25000000})
	require.NoError(t, err)
}

func TestValidateStructCollectsFailures(t *testing.T) {
	err := ValidateStruct(createPropertyPayload{Price: -1})
	require.Error(t, err)

	failures, ok := err.(ValidationErrors)
	require.True(t, ok)
	require.Len(t, failures, 3)

	// Field names come from json tags, not Go field names.
	require.Equal(t, "name", failures[0].Field)
	require.Contains(t, err.Error(), "price failed on gte=0")
}
