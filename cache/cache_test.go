package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EasterCompany/dex-camb-tools/config"
)

func TestNewDisabledReturnsNil(t *testing.T) {
	db, err := New(nil)
	require.NoError(t, err)
	assert.Nil(t, db)

	db, err = New(&config.RedisConfig{Enabled: false, Addr: "localhost:6379"})
	require.NoError(t, err)
	assert.Nil(t, db)

	db, err = New(&config.RedisConfig{Enabled: true, Addr: ""})
	require.NoError(t, err)
	assert.Nil(t, db)
}

func TestInvocationRecordRoundTrip(t *testing.T) {
	rec := InvocationRecord{ID: "a-b-c", Tool: "camb_tts", Duration: "1.2s"}
	data, err := marshalRecord(rec)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tool":"camb_tts"`)
	assert.NotContains(t, string(data), `"error"`, "empty errors are omitted")
}
