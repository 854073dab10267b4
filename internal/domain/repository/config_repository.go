package repository

import (
	"github.com/diillson/mawsh-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	DefaultConfigFile() string
}
