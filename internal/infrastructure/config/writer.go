package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var tomlSectionRegex = regexp.MustCompile(`^\s*\[([^\]]+)\]\s*$`)

// EncodeTOML renders the configuration as TOML with sections sorted
// alphabetically and fields in definition order.
func EncodeTOML(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to path as ordered TOML.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeTOML(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections reorders TOML sections by header. Keys above the first
// header stay on top.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var preamble []string
	var sections []section
	for _, line := range strings.Split(content, "\n") {
		if match := tomlSectionRegex.FindStringSubmatch(line); match != nil {
			sections = append(sections, section{header: match[1], lines: []string{line}})
			continue
		}
		if len(sections) == 0 {
			preamble = append(preamble, line)
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var blocks []string
	if head := strings.TrimSpace(strings.Join(preamble, "\n")); head != "" {
		blocks = append(blocks, head)
	}
	for _, sec := range sections {
		blocks = append(blocks, strings.TrimRight(strings.Join(sec.lines, "\n"), "\n"))
	}

	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
