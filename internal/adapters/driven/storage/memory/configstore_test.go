package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("api.user_agent", "test-agent"))

	val, ok := store.Get("api.user_agent")
	assert.True(t, ok)
	assert.Equal(t, "test-agent", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("s", "str")
	_ = store.Set("i", 7)
	_ = store.Set("i64", int64(8))
	_ = store.Set("f", 1.5)

	assert.Equal(t, "str", store.GetString("s"))
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 7, store.GetInt("i"))
	assert.Equal(t, 8, store.GetInt("i64"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.Equal(t, 1.5, store.GetFloat("f"))
	assert.Equal(t, 7.0, store.GetFloat("i"))
	assert.Equal(t, 0.0, store.GetFloat("s"))
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("fetch.per_page", 10)
	_ = store.Set("api.base_url", "x")

	assert.Equal(t, []string{"api.base_url", "fetch.per_page"}, store.Keys())
	assert.NoError(t, store.Load())
	assert.Equal(t, "", store.Path())
}
