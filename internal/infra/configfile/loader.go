// Package configfile loads contactbook.yaml and applies defaults.
package configfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vylia99/contactbook/internal/domain"
)

const FileName = "contactbook.yaml"

// Load reads contactbook.yaml from dir and applies parsed values on top of
// domain.DefaultConfig(). A missing file is not an error: defaults apply.
func Load(dir string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(dir, FileName)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfile.load",
			Kind: domain.KindStorage,
			Msg:  fmt.Sprintf("cannot parse %s", path),
			Err:  err,
		}
	}

	if y.Contactbook.Storage != "" {
		kind := domain.StorageKind(y.Contactbook.Storage)
		if kind != domain.StorageJSON && kind != domain.StorageSQLite {
			return cfg, &domain.OpError{
				Op:   "configfile.load",
				Kind: domain.KindStorage,
				Msg:  fmt.Sprintf("unknown storage %q (expected json|sqlite)", y.Contactbook.Storage),
			}
		}
		cfg.Storage = kind
	}
	if y.Contactbook.Paths.DataDir != "" {
		cfg.Paths.DataDir = y.Contactbook.Paths.DataDir
	}
	if y.Contactbook.Paths.BookFile != "" {
		cfg.Paths.BookFile = y.Contactbook.Paths.BookFile
	}

	return cfg, nil
}

type yamlConfig struct {
	Contactbook struct {
		Storage string `yaml:"storage"`

		Paths struct {
			DataDir  string `yaml:"data_dir"`
			BookFile string `yaml:"book_file"`
		} `yaml:"paths"`
	} `yaml:"contactbook"`
}

// DefaultDataDir resolves the per-user data directory (~/.contactbook).
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfile.home",
			Kind: domain.KindStorage,
			Err:  err,
		}
	}
	return filepath.Join(home, ".contactbook"), nil
}
