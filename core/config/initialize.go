package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into the directory unless one
// already exists, then loads it back.
func Initialize(fs afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fs, path)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("%s already exists, leaving it untouched", path)
	default:
		if err := afero.WriteFile(fs, path, defaultConfigData, 0600); err != nil {
			return nil, err
		}
		logger.Printf("wrote %s", path)
	}

	return Load(fs, dir)
}
