package validator

import (
	"testing"

	domainerrors "market/internal/domain/errors"

	"github.com/stretchr/testify/assert"
)

type listing struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

func TestValidator_ImplementsEchoValidator(t *testing.T) {
	v := New()
	assert.ErrorIs(t, v.Validate(&listing{}), domainerrors.ErrValidationFailed)
	assert.NoError(t, v.Validate(&listing{Price: 1}))
}
