package main

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanLimitReadsConfigAndFlag(t *testing.T) {
	viper.SetConfigType("yaml")
	require.NoError(t, viper.ReadConfig(strings.NewReader("scan:\n  limit: 7\n")))
	t.Cleanup(func() {
		require.NoError(t, viper.ReadConfig(strings.NewReader("scan:\n  limit: 0\n")))
	})

	cmd := scanCmd()

	// A config-file scan.limit applies while the flag is unset
	assert.Equal(t, 7, viper.GetInt("scan.limit"))

	// An explicit --limit overrides the config file
	require.NoError(t, cmd.Flags().Set("limit", "12"))
	assert.Equal(t, 12, viper.GetInt("scan.limit"))
}
