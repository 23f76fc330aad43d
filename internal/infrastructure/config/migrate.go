package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/bnema/quadspace/internal/application/port"
)

// Migrator implements port.ConfigMigrator against the current defaults.
type Migrator struct {
	configFile   string
	defaultViper *viper.Viper
}

// NewMigrator creates a migrator for configFile.
func NewMigrator(configFile string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")

	m := &Manager{viper: v}
	m.setDefaults()

	return &Migrator{configFile: configFile, defaultViper: v}
}

// ConfigFile returns the migrated path.
func (m *Migrator) ConfigFile() string {
	return m.configFile
}

// DetectChanges lists keys to add and keys to drop. A missing file has no changes.
func (m *Migrator) DetectChanges() ([]port.KeyChange, error) {
	userKeys, err := m.readUserKeys()
	if err != nil || userKeys == nil {
		return nil, err
	}

	defaultKeys := make(map[string]bool)
	for _, k := range m.defaultViper.AllKeys() {
		defaultKeys[k] = true
	}

	var changes []port.KeyChange
	for key := range defaultKeys {
		if _, ok := userKeys[key]; !ok {
			changes = append(changes, port.KeyChange{
				Type:  port.KeyChangeAdded,
				Key:   key,
				Value: formatValue(m.defaultViper.Get(key)),
			})
		}
	}
	for key, value := range userKeys {
		if !defaultKeys[key] {
			changes = append(changes, port.KeyChange{
				Type:  port.KeyChangeRemoved,
				Key:   key,
				Value: formatValue(value),
			})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Type != changes[j].Type {
			return changes[i].Type < changes[j].Type
		}
		return changes[i].Key < changes[j].Key
	})
	return changes, nil
}

// Migrate rewrites the file with every default key present and unknown keys
// dropped, keeping the user's values. It returns the applied changes.
func (m *Migrator) Migrate() ([]port.KeyChange, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(m.configFile)
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}
	if err := WriteConfigOrdered(merged, m.configFile); err != nil {
		return nil, err
	}
	return changes, nil
}

// readUserKeys returns the flattened keys of the user file, or nil if it does not exist.
func (m *Migrator) readUserKeys() (map[string]any, error) {
	data, err := os.ReadFile(m.configFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	keys := make(map[string]any)
	flatten(raw, "", keys)
	return keys, nil
}

func flatten(data map[string]any, prefix string, out map[string]any) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, out)
			continue
		}
		out[key] = v
	}
}

func formatValue(value any) string {
	if value == nil {
		return "null"
	}

	switch v := value.(type) {
	case string:
		if v == "" {
			return `""`
		}
		const maxStringLen = 50
		if len(v) > maxStringLen {
			return fmt.Sprintf("%q...", v[:maxStringLen-3])
		}
		return fmt.Sprintf("%q", v)
	case []any:
		return fmt.Sprintf("[%d items]", len(v))
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Slice {
			return fmt.Sprintf("[%d items]", rv.Len())
		}
		return fmt.Sprintf("%v", v)
	}
}
