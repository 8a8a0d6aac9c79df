package system

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCPUUsage(t *testing.T) {
	usage, err := GetCPUUsage()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, usage, 0.0)
	assert.LessOrEqual(t, usage, 100.0)
}

func TestGetMemoryUsage(t *testing.T) {
	usage, err := GetMemoryUsage()
	require.NoError(t, err)
	assert.Greater(t, usage, 0.0)
	assert.LessOrEqual(t, usage, 100.0)
}

func TestGetDiskUsage(t *testing.T) {
	usage, err := GetDiskUsage(os.TempDir())
	require.NoError(t, err)
	assert.Equal(t, os.TempDir(), usage.Path)
	assert.Greater(t, usage.TotalBytes, uint64(0))
	assert.LessOrEqual(t, usage.FreeBytes, usage.TotalBytes)
}

func TestGetDiskUsageUnknownPath(t *testing.T) {
	_, err := GetDiskUsage("/definitely/not/a/real/mountpoint")
	assert.Error(t, err)
}
