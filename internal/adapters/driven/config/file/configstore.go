package file

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/stargazer/internal/core/domain"
	"github.com/custodia-labs/stargazer/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigSource = (*ConfigStore)(nil)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "stargazer.toml"

// Configuration keys, in dot notation.
const (
	KeyUsername    = "github.username"
	KeyToken       = "github.token"
	KeyAPIURL      = "github.api_url"
	KeyWebURL      = "github.web_url"
	KeyRequestRate = "github.request_rate"
	KeyTimeout     = "github.timeout"
	KeyTemplate    = "output.template"
	KeyOutput      = "output.path"
	KeySnapshot    = "output.snapshot"
	KeyPlaceholder = "output.placeholder"
	KeySort        = "output.sort"
	KeyStyle       = "output.style"
	KeyTOC         = "output.toc"
	KeyUnlisted    = "output.unlisted"
)

// ConfigStore reads Stargazer settings from a TOML file such as:
//
//	[github]
//	username = "octocat"
//	request_rate = 1.2
//
//	[output]
//	style = "list"
//	toc = false
//
// Nested tables are flattened into dot-notation keys.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewConfigStore creates a config store for filePath and loads it.
// An empty filePath means DefaultPath. A missing file is only an error
// when required is set.
func NewConfigStore(filePath string, required bool) (*ConfigStore, error) {
	if filePath == "" {
		filePath = DefaultPath
	}

	s := &ConfigStore{
		filePath: filePath,
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetFloat retrieves a numeric configuration value.
func (s *ConfigStore) GetFloat(key string) float64 {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// Load reads configuration from the TOML file.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	s.data = flattenMap(loaded, "")
	return nil
}

// Apply overlays every key present in the file onto cfg.
func (s *ConfigStore) Apply(cfg *domain.Config) error {
	fields := map[string]*string{
		KeyUsername:    &cfg.Username,
		KeyToken:       &cfg.Token,
		KeyAPIURL:      &cfg.APIBaseURL,
		KeyWebURL:      &cfg.WebBaseURL,
		KeyTemplate:    &cfg.TemplatePath,
		KeyOutput:      &cfg.OutputPath,
		KeySnapshot:    &cfg.SnapshotPath,
		KeyPlaceholder: &cfg.Placeholder,
	}
	for key, dst := range fields {
		if _, ok := s.Get(key); ok {
			*dst = s.GetString(key)
		}
	}

	if _, ok := s.Get(KeySort); ok {
		cfg.SortBy = domain.ParseSortMode(s.GetString(KeySort))
	}
	if _, ok := s.Get(KeyStyle); ok {
		cfg.Style = domain.ParseStyle(s.GetString(KeyStyle))
	}
	if _, ok := s.Get(KeyTOC); ok {
		cfg.TableOfContents = s.GetBool(KeyTOC)
	}
	if _, ok := s.Get(KeyUnlisted); ok {
		cfg.Unlisted = s.GetBool(KeyUnlisted)
	}
	if val, ok := s.Get(KeyRequestRate); ok {
		switch val.(type) {
		case float64, int64:
			cfg.RequestRate = s.GetFloat(KeyRequestRate)
		default:
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidConfig, KeyRequestRate)
		}
	}
	if _, ok := s.Get(KeyTimeout); ok {
		timeout, err := time.ParseDuration(s.GetString(KeyTimeout))
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, KeyTimeout, err)
		}
		cfg.Timeout = timeout
	}

	return nil
}

// Keys returns the loaded keys in no particular order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	return keys
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := strings.ToLower(key)
		if prefix != "" {
			fullKey = prefix + "." + fullKey
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
