package port

// KeyChangeType describes how a config key differs from the defaults.
type KeyChangeType int

const (
	// KeyChangeAdded is a default key missing from the user file.
	KeyChangeAdded KeyChangeType = iota
	// KeyChangeRemoved is a user key that is no longer read.
	KeyChangeRemoved
)

// KeyChange is one difference between the user config and the defaults.
type KeyChange struct {
	Type  KeyChangeType
	Key   string
	Value string
}

// ConfigMigrator compares and rewrites the user's config file.
type ConfigMigrator interface {
	// DetectChanges lists the changes Migrate would apply.
	// A missing config file yields no changes.
	DetectChanges() ([]KeyChange, error)

	// Migrate rewrites the file and returns the applied changes.
	Migrate() ([]KeyChange, error)

	// ConfigFile returns the path being migrated.
	ConfigFile() string
}
