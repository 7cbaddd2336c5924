package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, KindConflict.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
	assert.Equal(t, http.StatusUnauthorized, KindUnauthorized.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, KindCapacity.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, KindInternal.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, Kind("BOGUS").HTTPStatus())
}

func TestAsThroughWrapping(t *testing.T) {
	base := NotFound("user not found")
	wrapped := fmt.Errorf("register: %w", base)

	typed := As(wrapped)
	require.NotNil(t, typed)
	assert.Equal(t, KindNotFound, typed.Kind)
	assert.Equal(t, "user not found", typed.Message)
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(nil, KindNotFound))
}

func TestUntypedErrorsAreInternal(t *testing.T) {
	assert.Nil(t, As(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Internal("failed to create store", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, "VALIDATION_ERROR: email field is required", Validation("%s field is required", "email").Error())
}
