package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPortFlag checks --port is accepted both on the bare binary and on serve
func TestPortFlag(t *testing.T) {
	t.Cleanup(func() { servePort = "" })

	require.NoError(t, rootCmd.ParseFlags([]string{"--port", "9000"}))
	assert.Equal(t, "9000", servePort)

	servePort = ""
	require.NotNil(t, serveCmd.InheritedFlags().Lookup("port"))
	require.NoError(t, serveCmd.ParseFlags([]string{"--port", "9100"}))
	assert.Equal(t, "9100", servePort)
}
