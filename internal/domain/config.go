package domain

// StorageKind selects the persistence backend for the book file.
type StorageKind string

const (
	StorageJSON   StorageKind = "json"
	StorageSQLite StorageKind = "sqlite"
)

// Config represents the minimal contactbook configuration loaded from
// contactbook.yaml.
type Config struct {
	Storage StorageKind
	Paths   PathsConfig
}

type PathsConfig struct {
	// DataDir holds the book file and logs. Empty means the per-user
	// default (~/.contactbook).
	DataDir string

	// BookFile is the book file name inside DataDir. Empty means the
	// backend default (addressbook.json or addressbook.db).
	BookFile string
}

// DefaultConfig provides sane defaults if contactbook.yaml is partially
// missing.
func DefaultConfig() Config {
	return Config{
		Storage: StorageJSON,
		Paths:   PathsConfig{},
	}
}

// BookFileName resolves the configured or backend-default file name.
func (c Config) BookFileName() string {
	if c.Paths.BookFile != "" {
		return c.Paths.BookFile
	}
	if c.Storage == StorageSQLite {
		return "addressbook.db"
	}
	return "addressbook.json"
}
