package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	name  string
	count int
}

func TestApply_InOrder(t *testing.T) {
	cfg := &testConfig{}

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.name = "first" }),
		NoError(func(c *testConfig) { c.name = "second" }),
		NoError(func(c *testConfig) { c.count = 42 }),
	)
	require.NoError(t, err)
	require.Equal(t, "second", cfg.name)
	require.Equal(t, 42, cfg.count)
}

func TestApply_StopsOnError(t *testing.T) {
	cfg := &testConfig{}
	sentinel := errors.New("bad option")

	err := Apply(cfg,
		NoError(func(c *testConfig) { c.count = 1 }),
		New(func(c *testConfig) error { return sentinel }),
		NoError(func(c *testConfig) { c.count = 2 }),
	)
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, 1, cfg.count)
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &testConfig{name: "untouched"}
	require.NoError(t, Apply(cfg))
	require.Equal(t, "untouched", cfg.name)
}
