package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/cfdops/caseflow/pkg/config/types"
)

const (
	environmentVariablePrefix = "CASEFLOW"
	inferConfigTypes          = true
	automaticEnvVar           = true

	configType = "yaml"
	configName = "caseflow"

	// DotEnvFileName is loaded from the case root before environment
	// variables are resolved, so site settings such as the scheduler account
	// can live next to the case.
	DotEnvFileName = ".env"
)

var (
	environmentVariableReplace = strings.NewReplacer(".", "_")
	configDecoderHook          = viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())
)

// Load resolves the manifest for the case at root. Precedence, lowest first:
// built-in defaults, the caseflow.yaml manifest if one exists (schema-checked
// before merging), then CASEFLOW_* environment variables. A .env file in the
// case root is loaded before environment resolution.
func Load(root string) (types.CaseflowConfig, error) {
	defaultConfig := types.Default
	defaultConfig.Case.Root = root

	loadDotEnv(root)

	return initConfig(root, WithDefaultConfig(defaultConfig), WithFileHandler(ReadConfigHandler))
}

type Params struct {
	FileName      string
	FileType      string
	FileHandler   func(fileName string) error
	DefaultConfig types.CaseflowConfig
}

func initConfig(path string, opts ...Option) (types.CaseflowConfig, error) {
	params := &Params{
		FileName:      configName,
		FileType:      configType,
		FileHandler:   NoopConfigHandler,
		DefaultConfig: types.Default,
	}

	for _, opt := range opts {
		opt(params)
	}

	viper.AddConfigPath(path)
	viper.SetConfigName(params.FileName)
	viper.SetConfigType(params.FileType)
	viper.SetEnvPrefix(environmentVariablePrefix)
	viper.SetTypeByDefaultValue(inferConfigTypes)
	viper.SetEnvKeyReplacer(environmentVariableReplace)
	if err := SetDefault(params.DefaultConfig); err != nil {
		return types.CaseflowConfig{}, err
	}

	if err := params.FileHandler(filepath.Join(path, fmt.Sprintf("%s.%s", params.FileName, params.FileType))); err != nil {
		return types.CaseflowConfig{}, err
	}

	if automaticEnvVar {
		viper.AutomaticEnv()
	}

	var out types.CaseflowConfig
	if err := viper.Unmarshal(&out, configDecoderHook); err != nil {
		return types.CaseflowConfig{}, err
	}

	// the case root is decided by the caller, never by the manifest
	out.Case.Root = path
	return out, nil
}

// Reset clears all configuration, useful for testing.
func Reset() {
	viper.Reset()
}

func loadDotEnv(root string) {
	path := filepath.Join(root, DotEnvFileName)
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Warn().Err(err).Str("Path", path).Msg("failed to load .env file")
	}
}
