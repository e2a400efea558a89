package dto

import (
	"strings"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPersonName(t *testing.T) {
	assert.True(t, ValidPersonName("Alice"))
	assert.True(t, ValidPersonName("Mary Ann"))
	assert.True(t, ValidPersonName("Al"))
	assert.False(t, ValidPersonName("A"))
	assert.False(t, ValidPersonName("R2D2"))
	assert.False(t, ValidPersonName("bob_smith"))
	assert.False(t, ValidPersonName(strings.Repeat("a", 51)))
}

func TestRegisterValidators_BindsPersonNameTag(t *testing.T) {
	require.NoError(t, RegisterValidators())

	ok := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "secret1"}
	assert.NoError(t, binding.Validator.ValidateStruct(&ok))

	bad := RegisterRequest{Name: "4lice", Email: "alice@example.com", Password: "secret1"}
	assert.Error(t, binding.Validator.ValidateStruct(&bad))
}

func TestRegisterRequest_PasswordLength(t *testing.T) {
	require.NoError(t, RegisterValidators())

	short := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "abc"}
	assert.NoError(t, binding.Validator.ValidateStruct(&short))

	tooLong := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: strings.Repeat("p", 73)}
	assert.Error(t, binding.Validator.ValidateStruct(&tooLong))

	empty := RegisterRequest{Name: "Alice", Email: "alice@example.com"}
	assert.Error(t, binding.Validator.ValidateStruct(&empty))
}
