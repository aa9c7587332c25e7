package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/regen-engine/internal/uuid"
)

func TestGoogleUUIDGenerator(t *testing.T) {
	gen := uuid.NewGoogleUUIDGenerator()

	first := gen.New()
	second := gen.New()

	_, err := googleuuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSequenceGenerator(t *testing.T) {
	gen := &uuid.SequenceGenerator{Prefix: "cond"}

	assert.Equal(t, "cond-1", gen.New())
	assert.Equal(t, "cond-2", gen.New())
	for i := 0; i < 8; i++ {
		gen.New()
	}
	assert.Equal(t, "cond-11", gen.New())
}
