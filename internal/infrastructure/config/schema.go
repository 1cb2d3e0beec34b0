package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"
)

// GenerateSchema returns the JSON schema of the configuration file.
func GenerateSchema() ([]byte, error) {
	r := new(jsonschema.Reflector)
	r.DoNotReference = true
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/bnema/dockspace/config.schema.json"
	schema.Title = "Dockspace Configuration"
	schema.Description = "Configuration schema for the dockspace window docking engine"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// GenerateSchemaFile writes config.schema.json next to the config file and
// returns its path.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := GenerateSchema()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
