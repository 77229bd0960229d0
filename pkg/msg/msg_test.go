package msg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessageFromEmbeddedCatalog(t *testing.T) {
	assert.Equal(t, "Введите название города", GetMessage("weather.error.empty-city"))
	assert.Equal(t, "Произошла ошибка", GetMessage("weather.error.fallback"))
}

func TestGetMessageReplacesPlaceholders(t *testing.T) {
	assert.Equal(t, "Погода в Paris, France", GetMessage("weather.title", "Paris", "France"))
	assert.Equal(t, `Город "Atlantis" не найден`, GetMessage("weather.error.city-not-found", "Atlantis"))
}

func TestGetMessageMarshalsNonPrimitives(t *testing.T) {
	got := GetMessage("weather.title", []string{"a"}, map[string]int{"b": 1})
	assert.Equal(t, `Погода в ["a"], {"b":1}`, got)
}

func TestGetMessageUnknownKey(t *testing.T) {
	assert.Equal(t, "Message not found: nope.nope", GetMessage("nope.nope"))
}

func TestInitOverridesMessages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("custom:\n  greeting: \"hello {0}\"\n"), 0o600))

	Init(path)

	assert.Equal(t, "hello world", GetMessage("custom.greeting", "world"))
	assert.Equal(t, "Введите название города", GetMessage("weather.error.empty-city"))
}
