package moveargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultParseConfig(t *testing.T) {
	cfg := defaultParseConfig()

	assert.Equal(t, DefaultMaxDepth, cfg.maxDepth)
	assert.Nil(t, cfg.typeArgs)
}

func TestWithMaxDepth(t *testing.T) {
	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"positive", 4, 4},
		{"one", 1, 1},
		{"zero is ignored", 0, DefaultMaxDepth},
		{"negative is ignored", -3, DefaultMaxDepth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultParseConfig()
			WithMaxDepth(tt.value)(cfg)
			assert.Equal(t, tt.want, cfg.maxDepth)
		})
	}
}

func TestWithTypeArgs(t *testing.T) {
	cfg := defaultParseConfig()
	WithTypeArgs(TypeU8, NewVector(TypeBool))(cfg)

	require.Len(t, cfg.typeArgs, 2)
	assert.Equal(t, TypeU8, cfg.typeArgs[0])
	assert.Equal(t, "vector<bool>", cfg.typeArgs[1].String())
}

func TestMultipleOptions(t *testing.T) {
	cfg := defaultParseConfig()
	for _, opt := range []ParseOption{WithMaxDepth(2), WithTypeArgs(TypeU64), WithMaxDepth(3)} {
		opt(cfg)
	}

	assert.Equal(t, 3, cfg.maxDepth, "last WithMaxDepth wins")
	assert.Len(t, cfg.typeArgs, 1)
}
