package exceptions

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateDevMessage(t *testing.T) {
	short := "insert failed"
	assert.Equal(t, short, TruncateDevMessage(short))

	long := strings.Repeat("x", 200)
	truncated := TruncateDevMessage(long)
	assert.Len(t, truncated, 80)
}

func TestBuildNewCustomError(t *testing.T) {
	customErr := BuildNewCustomError(assert.AnError, 500, "Something went wrong", "insert failed")

	assert.Equal(t, 500, customErr.StatusCode)
	assert.Equal(t, "Something went wrong", customErr.ClientMessage)
	assert.Contains(t, customErr.DevMessage, "insert failed")
	assert.Contains(t, customErr.DevMessage, assert.AnError.Error())
	assert.NotEmpty(t, customErr.Location.File)
}
