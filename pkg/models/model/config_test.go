package model

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	for _, s := range []string{"ON", "On", "on", "1", " yes "} {
		assert.Equal(t, On, NewConfig(s), s)
	}
	for _, s := range []string{"OFF", "off", "0", "maybe", ""} {
		assert.Equal(t, Off, NewConfig(s), s)
	}
}

func TestConfigFlag(t *testing.T) {
	var c Config
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&c, "ai", "")

	require.NoError(t, fs.Parse([]string{"-ai=on"}))
	assert.Equal(t, On, c)
	assert.Equal(t, "On", c.String())

	require.NoError(t, fs.Parse([]string{"-ai"}))
	assert.Equal(t, On, c)

	assert.Error(t, fs.Parse([]string{"-ai=sometimes"}))
}
