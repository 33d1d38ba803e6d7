package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/tidwall/sjson"
	"github.com/xeipuuv/gojsonschema"
	"sigs.k8s.io/yaml"

	"github.com/cfdops/caseflow/pkg/config/types"
	"github.com/cfdops/caseflow/pkg/models"
)

// GenerateManifestJSONSchema reflects the manifest structure into a JSON
// schema. Reflection alone cannot know that durations are written as strings
// or that counts cannot be negative, so those spots are patched afterwards.
func GenerateManifestJSONSchema() ([]byte, error) {
	s := jsonschema.Reflect(&types.CaseflowConfig{})

	jsonSchemaData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("error indenting schema: %w", err)
	}

	jsonString := string(jsonSchemaData)

	durationPaths := []string{
		"$defs.SchedulerConfig.properties.CommandTimeout",
		"$defs.JobConfig.properties.TimeLimit",
		"$defs.LogsConfig.properties.Retention",
	}
	for _, path := range durationPaths {
		jsonString, _ = sjson.Set(jsonString, path+".type", "string")
	}

	countPaths := []string{
		"$defs.JobConfig.properties.Tasks",
		"$defs.MonitorConfig.properties.TailLines",
	}
	for _, path := range countPaths {
		jsonString, _ = sjson.Set(jsonString, path+".minimum", 0)
	}

	return []byte(jsonString), nil
}

// ValidateManifestFile checks a manifest file against the generated schema.
// Unknown keys and mistyped values are reported with their JSON paths.
func ValidateManifestFile(fileName string) error {
	manifest, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", fileName, err)
	}
	if err := ValidateManifestBytes(manifest); err != nil {
		return models.NewBaseError("manifest %s is not valid: %s", fileName, err).
			WithCode(models.ConfigurationError).
			WithHint("compare the manifest against the output of 'caseflow config schema'")
	}
	return nil
}

// ValidateManifestBytes checks raw manifest YAML against the generated
// schema. JSON passes through unchanged since YAML is a superset.
func ValidateManifestBytes(manifest []byte) error {
	jsonSchemaData, err := GenerateManifestJSONSchema()
	if err != nil {
		return err
	}

	// required by gojsonschema, a no-op when the input is already JSON
	manifestAsJSON, err := yaml.YAMLToJSON(manifest)
	if err != nil {
		return fmt.Errorf("converting manifest to JSON: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(string(jsonSchemaData))
	documentLoader := gojsonschema.NewStringLoader(string(manifestAsJSON))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validating manifest: %w", err)
	}

	if !result.Valid() {
		msg := ""
		for _, desc := range result.Errors() {
			if msg != "" {
				msg += "; "
			}
			msg += desc.String()
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}
