package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// parseYAML накладывает значения из YAML-файла. Отсутствующие ключи не меняют текущих значений.
// Длительности задаются строками вида "500ms", "30s".
func parseYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
