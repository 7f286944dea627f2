package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	width int
	name  string
	calls []string
}

var errNegativeWidth = errors.New("width cannot be negative")

func withWidth(w int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if w < 0 {
			return errNegativeWidth
		}
		c.width = w
		c.calls = append(c.calls, "width")

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
		c.calls = append(c.calls, "name")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("nine"), withWidth(9))
		require.NoError(t, err)
		require.Equal(t, 9, cfg.width)
		require.Equal(t, "nine", cfg.name)
		require.Equal(t, []string{"name", "width"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withWidth(-1), withName("never"))
		require.ErrorIs(t, err, errNegativeWidth)
		require.Empty(t, cfg.name)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, nil, withWidth(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.width)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{width: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.width)
	})
}
