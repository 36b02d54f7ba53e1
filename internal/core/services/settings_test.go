package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexa-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/lexa-cli/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		domain.SettingCorpusPath:        "/srv/lexa/corpus.yaml",
		domain.SettingCorpusWatch:       true,
		domain.SettingSearchLimit:       int64(3),
		domain.SettingMaxTextBytes:      1024,
		domain.SettingMatchTimeoutMS:    float64(50),
		domain.SettingSourceQueryPrefix: "Lei 8.245 ",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, "/srv/lexa/corpus.yaml", settings.Corpus.Path)
	assert.True(t, settings.Corpus.Watch)
	assert.Equal(t, 3, settings.Search.Limit)
	assert.Equal(t, 1024, settings.Annotate.MaxTextBytes)
	assert.Equal(t, 50*time.Millisecond, settings.Annotate.MatchTimeout)
	assert.Equal(t, "Lei 8.245 ", settings.Annotate.SourceQueryPrefix)
	assert.Equal(t, domain.DefaultAppSettings().Annotate.SearchURL, settings.Annotate.SearchURL)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		domain.SettingSearchLimit:    99,
		domain.SettingMaxTextBytes:   -1,
		domain.SettingMatchTimeoutMS: "fast",
	})
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Search.Limit, settings.Search.Limit)
	assert.Equal(t, defaults.Annotate.MaxTextBytes, settings.Annotate.MaxTextBytes)
	assert.Equal(t, defaults.Annotate.MatchTimeout, settings.Annotate.MatchTimeout)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	settings := domain.DefaultAppSettings()
	settings.Search.Limit = 5
	settings.Annotate.MatchTimeout = 100 * time.Millisecond

	require.NoError(t, service.Save(&settings))

	assert.Equal(t, 1, store.Saves())
	assert.Equal(t, 5, store.GetInt(domain.SettingSearchLimit))
	assert.Equal(t, 100, store.GetInt(domain.SettingMatchTimeoutMS))
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	settings := domain.DefaultAppSettings()
	settings.Search.Limit = 0

	err := service.Save(&settings)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, store.Saves())
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{domain.SettingCorpusPath, "/tmp/c.yaml", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "/tmp/c.yaml", s.Corpus.Path)
		}},
		{domain.SettingCorpusWatch, "true", func(t *testing.T, s *domain.AppSettings) {
			assert.True(t, s.Corpus.Watch)
		}},
		{domain.SettingSearchLimit, "4", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 4, s.Search.Limit)
		}},
		{domain.SettingMaxTextBytes, "2048", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 2048, s.Annotate.MaxTextBytes)
		}},
		{domain.SettingMatchTimeoutMS, "75", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, 75*time.Millisecond, s.Annotate.MatchTimeout)
		}},
		{domain.SettingSearchURL, "https://duckduckgo.com/?q=", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "https://duckduckgo.com/?q=", s.Annotate.SearchURL)
		}},
		{domain.SettingSourceQueryPrefix, "Lei 8.245 ", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, "Lei 8.245 ", s.Annotate.SourceQueryPrefix)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"bool", domain.SettingCorpusWatch, "maybe"},
		{"not an integer", domain.SettingSearchLimit, "three"},
		{"limit above cap", domain.SettingSearchLimit, "8"},
		{"zero bytes", domain.SettingMaxTextBytes, "0"},
		{"relative url", domain.SettingSearchURL, "search?q="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.Set(tt.key, tt.value)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Zero(t, store.Saves())
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	keys[0] = "mutated"

	assert.Len(t, service.Keys(), 7)
	assert.Equal(t, domain.SettingCorpusPath, service.Keys()[0])
}
