package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/quadspace/internal/application/port"
	"github.com/bnema/quadspace/internal/logging"
)

// DetectChangesOutput holds the result of change detection.
type DetectChangesOutput struct {
	// HasChanges is true if any changes were detected.
	HasChanges bool
	// Changes contains all detected changes.
	Changes []port.KeyChange
	// DiffText is a formatted diff-like string representation.
	DiffText string
}

// MigrateConfigOutput holds the result of the migration.
type MigrateConfigOutput struct {
	// Applied contains the changes written to disk.
	Applied []port.KeyChange
	// ConfigFile is the path to the config file.
	ConfigFile string
}

// MigrateConfigUseCase handles config migration operations.
type MigrateConfigUseCase struct {
	migrator port.ConfigMigrator
}

// NewMigrateConfigUseCase creates a new migrate config use case.
func NewMigrateConfigUseCase(migrator port.ConfigMigrator) *MigrateConfigUseCase {
	return &MigrateConfigUseCase{migrator: migrator}
}

// DetectChanges detects all config changes and returns a diff-like output.
func (uc *MigrateConfigUseCase) DetectChanges(ctx context.Context) (*DetectChangesOutput, error) {
	log := logging.FromContext(ctx)

	changes, err := uc.migrator.DetectChanges()
	if err != nil {
		log.Warn().Err(err).Msg("config change detection failed")
		return nil, fmt.Errorf("failed to detect config changes: %w", err)
	}

	if len(changes) == 0 {
		log.Debug().Msg("no config changes detected")
		return &DetectChangesOutput{DiffText: FormatChangesAsDiff(nil)}, nil
	}

	log.Debug().Int("changes", len(changes)).Msg("config changes detected")
	return &DetectChangesOutput{
		HasChanges: true,
		Changes:    changes,
		DiffText:   FormatChangesAsDiff(changes),
	}, nil
}

// Execute adds missing default keys and removes unknown keys from the user's config file.
func (uc *MigrateConfigUseCase) Execute(ctx context.Context) (*MigrateConfigOutput, error) {
	log := logging.FromContext(ctx)

	configFile := uc.migrator.ConfigFile()
	applied, err := uc.migrator.Migrate()
	if err != nil {
		log.Error().Err(err).Str("config_file", configFile).Msg("config migration failed")
		return nil, fmt.Errorf("failed to migrate config: %w", err)
	}

	if len(applied) == 0 {
		log.Debug().Msg("no migration needed")
		return &MigrateConfigOutput{ConfigFile: configFile}, nil
	}

	log.Info().
		Int("applied_keys", len(applied)).
		Str("config_file", configFile).
		Msg("config migration completed")

	return &MigrateConfigOutput{Applied: applied, ConfigFile: configFile}, nil
}

// FormatChangesAsDiff renders changes the way `config migrate --dry-run` prints them.
func FormatChangesAsDiff(changes []port.KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	sb.WriteString("Config migration changes:\n\n")
	for _, change := range changes {
		switch change.Type {
		case port.KeyChangeAdded:
			fmt.Fprintf(&sb, "  + %s = %s\n", change.Key, change.Value)
		case port.KeyChangeRemoved:
			fmt.Fprintf(&sb, "  - %s = %s (unknown)\n", change.Key, change.Value)
		}
	}
	return sb.String()
}
