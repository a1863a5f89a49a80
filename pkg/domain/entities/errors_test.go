package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Taxonomy(t *testing.T) {
	testCases := []struct {
		kind     error
		kindName string
	}{
		{ErrParse, "ParseError"},
		{ErrRange, "RangeError"},
		{ErrBusinessRule, "BusinessRuleError"},
		{ErrNotFound, "NotFoundError"},
	}

	for _, tc := range testCases {
		t.Run(tc.kindName, func(t *testing.T) {
			err := fmt.Errorf("save part: %w", NewValidationError(tc.kind, FieldPrice, "bad price"))

			assert.ErrorIs(t, err, tc.kind)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, FieldPrice, verr.Field)
			assert.Equal(t, tc.kindName, verr.KindName())
			assert.Equal(t, "price: bad price", verr.Error())
		})
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "ADD", ActionAdd.String())
	assert.Equal(t, "MODIFY", ActionModify.String())
	assert.Equal(t, "Unknown", Action(9).String())
}
