package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDGenerator_Sequential(t *testing.T) {
	next := NewIDGenerator(false)
	assert.Equal(t, "1", next())
	assert.Equal(t, "2", next())

	other := NewIDGenerator(false)
	assert.Equal(t, "1", other(), "generators do not share state")
}

func TestNewIDGenerator_Random(t *testing.T) {
	next := NewIDGenerator(true)
	a, b := next(), next()
	assert.NotEqual(t, a, b)

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}
