package config

import (
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/cfdops/caseflow/pkg/config/types"
)

// SetDefault registers the given manifest as the default value of every
// configuration key. Round-tripping through YAML turns typed fields such as
// durations into the same textual form the manifest file uses.
func SetDefault(cfg types.CaseflowConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	var decoded map[string]interface{}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return err
	}

	for key, value := range decoded {
		viper.SetDefault(key, value)
	}
	return nil
}
