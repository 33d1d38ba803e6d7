package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/cfdops/caseflow/pkg/config/types"
)

type Option func(options *Params)

func WithFileName(name string) Option {
	return func(options *Params) {
		options.FileName = name
	}
}

func WithFileType(ftype string) Option {
	return func(options *Params) {
		options.FileType = ftype
	}
}

func WithDefaultConfig(cfg types.CaseflowConfig) Option {
	return func(options *Params) {
		options.DefaultConfig = cfg
	}
}

func WithFileHandler(handler func(name string) error) Option {
	return func(options *Params) {
		options.FileHandler = handler
	}
}

func NoopConfigHandler(fileName string) error {
	return nil
}

// ReadConfigHandler merges an existing manifest file into the configuration.
// A missing file is fine, defaults and the environment cover everything; a
// present file is schema-checked first so typos fail loudly instead of being
// silently ignored.
func ReadConfigHandler(fileName string) error {
	if _, err := os.Stat(fileName); os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}

	if err := ValidateManifestFile(fileName); err != nil {
		return err
	}

	return viper.ReadInConfig()
}
