package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/lexa-cli/internal/core/domain"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/lexa-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingKeys lists settable keys in display order.
var settingKeys = []string{
	domain.SettingCorpusPath,
	domain.SettingCorpusWatch,
	domain.SettingSearchLimit,
	domain.SettingMaxTextBytes,
	domain.SettingMatchTimeoutMS,
	domain.SettingSearchURL,
	domain.SettingSourceQueryPrefix,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings. Missing or invalid values
// fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Corpus: domain.CorpusSettings{
			Path:  s.configStore.GetString(domain.SettingCorpusPath),
			Watch: s.getBool(domain.SettingCorpusWatch, defaults.Corpus.Watch),
		},
		Search: domain.SearchSettings{
			Limit: s.getBoundedInt(domain.SettingSearchLimit, defaults.Search.Limit, 1, domain.MaxSearchResults),
		},
		Annotate: domain.AnnotateSettings{
			MaxTextBytes: s.getBoundedInt(domain.SettingMaxTextBytes, defaults.Annotate.MaxTextBytes, 1, 0),
			MatchTimeout: time.Duration(s.getBoundedInt(
				domain.SettingMatchTimeoutMS, int(defaults.Annotate.MatchTimeout.Milliseconds()), 1, 0,
			)) * time.Millisecond,
			SearchURL:         s.getString(domain.SettingSearchURL, defaults.Annotate.SearchURL),
			SourceQueryPrefix: s.getString(domain.SettingSourceQueryPrefix, defaults.Annotate.SourceQueryPrefix),
		},
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	values := []struct {
		key   string
		value any
	}{
		{domain.SettingCorpusPath, settings.Corpus.Path},
		{domain.SettingCorpusWatch, settings.Corpus.Watch},
		{domain.SettingSearchLimit, settings.Search.Limit},
		{domain.SettingMaxTextBytes, settings.Annotate.MaxTextBytes},
		{domain.SettingMatchTimeoutMS, int(settings.Annotate.MatchTimeout.Milliseconds())},
		{domain.SettingSearchURL, settings.Annotate.SearchURL},
		{domain.SettingSourceQueryPrefix, settings.Annotate.SourceQueryPrefix},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return s.configStore.Save()
}

// Set parses value for key, validates the resulting settings and persists them.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case domain.SettingCorpusPath:
		settings.Corpus.Path = value
	case domain.SettingCorpusWatch:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		settings.Corpus.Watch = b
	case domain.SettingSearchLimit:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Search.Limit = n
	case domain.SettingMaxTextBytes:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Annotate.MaxTextBytes = n
	case domain.SettingMatchTimeoutMS:
		n, err := parseInt(key, value)
		if err != nil {
			return err
		}
		settings.Annotate.MatchTimeout = time.Duration(n) * time.Millisecond
	case domain.SettingSearchURL:
		settings.Annotate.SearchURL = value
	case domain.SettingSourceQueryPrefix:
		settings.Annotate.SourceQueryPrefix = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	return s.Save(settings)
}

// Keys lists the settable keys in display order.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getBoundedInt returns the stored value when it lies in [lo, hi]; hi <= 0
// means no upper bound.
func (s *SettingsService) getBoundedInt(key string, defaultVal, lo, hi int) int {
	val := s.configStore.GetInt(key)
	if val < lo || (hi > 0 && val > hi) {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}
