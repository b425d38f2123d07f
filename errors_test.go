package vec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexError(t *testing.T) {
	err := &IndexError{Index: 7, Len: 3}
	assert.Equal(t, "index 7 out of range [0, 3)", err.Error())
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.False(t, errors.Is(err, ErrEmpty))
}
