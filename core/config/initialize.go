package config

import (
	"log"
	"os"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir if one doesn't exist
// and returns the loaded result.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return InitializeFs(afero.NewBasePathFs(afero.NewOsFs(), dir), logger)
}

// InitializeFs is Initialize over an arbitrary filesystem.
func InitializeFs(fs afero.Fs, logger *log.Logger) (*Configuration, error) {
	exists, err := afero.Exists(fs, ConfigurationName)
	switch {
	case err != nil:
		return nil, err
	case exists:
		logger.Printf("- %s already exists, skipping", ConfigurationName)
	default:
		logger.Printf("- Writing %s", ConfigurationName)
		if err := afero.WriteFile(fs, ConfigurationName, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	}

	return LoadFs(fs)
}
