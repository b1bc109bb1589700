package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kastaem/kadmin/pkg/validation"
)

func TestValidateThreadCount(t *testing.T) {
	assert.NoError(t, validation.ValidateThreadCount(1))
	assert.NoError(t, validation.ValidateThreadCount(20))
	assert.Error(t, validation.ValidateThreadCount(0))
	assert.Error(t, validation.ValidateThreadCount(21))
	assert.Error(t, validation.ValidateThreadCount(-5))
}

func TestValidateNonEmptyString(t *testing.T) {
	assert.NoError(t, validation.ValidateNonEmptyString("field", "value"))

	err := validation.ValidateNonEmptyString("email", "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidateCredentials(t *testing.T) {
	assert.NoError(t, validation.ValidateCredentials("admin", "hunter2"))
	assert.Error(t, validation.ValidateCredentials("", "hunter2"))
	assert.Error(t, validation.ValidateCredentials("admin", ""))
}

func TestValidateMethod(t *testing.T) {
	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE", "get", "delete"} {
		assert.NoError(t, validation.ValidateMethod(method), method)
	}
	assert.Error(t, validation.ValidateMethod("TRACE"))
	assert.Error(t, validation.ValidateMethod(""))
	assert.Error(t, validation.ValidateMethod("FETCH"))
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, validation.ValidateEndpoint("/admin/staff"))
	assert.Error(t, validation.ValidateEndpoint(""))
	assert.Error(t, validation.ValidateEndpoint("admin/staff"))
}
