package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

func TestConfigCmd_ShowDefaults(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "[Corpus]\n  Path: (embedded)\n  Watch: false")
	assert.Contains(t, out, "[Search]\n  Limit: 7")
	assert.Contains(t, out, "Match timeout: 250ms")
	assert.Contains(t, out, `Source query prefix: "Lei do Inquilinato "`)
}

func TestConfigCmd_SetThenShow(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "config", "set", "search.limit", "3")
	require.NoError(t, err)
	assert.Equal(t, "Set search.limit = 3\n", out)

	out, err = execute(t, "", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Limit: 3")
}

func TestConfigCmd_SetInvalid(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "config", "set", "search.limit", "99")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = execute(t, "", "config", "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigCmd_Keys(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "config", "keys")

	require.NoError(t, err)
	keys := strings.Fields(out)
	assert.Len(t, keys, 7)
	assert.Contains(t, keys, domain.SettingSourceQueryPrefix)
}
