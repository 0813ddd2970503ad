// Package config loads the YAML processing configuration: named sections,
// each selecting an engine class, with a "defaults" section merged under
// every other one.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultsSection is the reserved section name whose values seed every
// other section. Section values win; list values replace wholesale.
const defaultsSection = "defaults"

// ValidClasses lists the engine classes a section may select.
var ValidClasses = []string{"publications", "citations", "journals", "results"}

// Section holds the configuration of one named section.
type Section struct {
	Name string `yaml:"-"`

	Class              string   `yaml:"class"`
	Years              string   `yaml:"years"`
	Date               string   `yaml:"date"`
	CitationRegisters  []string `yaml:"citation-registers"`
	JournalCatalogFile string   `yaml:"journal-catalog-file"`
	JournalColumn      string   `yaml:"journal-column"`
	CatalogKey         string   `yaml:"catalog-key"`
	QueryColumn        string   `yaml:"query-column"`
	CitesColumn        string   `yaml:"cites-column"`
	Groups             []string `yaml:"groups"`
	Extract            []string `yaml:"extract"`
	Select             []string `yaml:"select"`
	Drop               []string `yaml:"drop"`
	Filter             string   `yaml:"filter"`
	OutputDir          string   `yaml:"output-dir"`
}

// Config is a parsed configuration file. Section order follows the
// document.
type Config struct {
	sections []*Section
	byName   map[string]*Section
}

// Load reads and parses the configuration file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses configuration YAML. The document must be a mapping of
// section names; document order is preserved, which is why this decodes
// through yaml.Node rather than a map.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, fmt.Errorf("config is empty")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config must be a mapping of sections")
	}

	var defaults *yaml.Node
	for i := 0; i < len(root.Content); i += 2 {
		if root.Content[i].Value == defaultsSection {
			defaults = root.Content[i+1]
		}
	}

	cfg := &Config{byName: make(map[string]*Section)}
	for i := 0; i < len(root.Content); i += 2 {
		name := root.Content[i].Value
		if name == defaultsSection {
			continue
		}
		if cfg.byName[name] != nil {
			return nil, fmt.Errorf("duplicate section %q", name)
		}

		sec := &Section{Name: name}
		if defaults != nil && !isNull(defaults) {
			if err := defaults.Decode(sec); err != nil {
				return nil, fmt.Errorf("section %s: applying defaults: %w", name, err)
			}
		}
		// A bare "section:" line means defaults only.
		if node := root.Content[i+1]; !isNull(node) {
			if err := node.Decode(sec); err != nil {
				return nil, fmt.Errorf("section %s: %w", name, err)
			}
		}

		applyFallbacks(sec)
		if err := validate(sec); err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		cfg.sections = append(cfg.sections, sec)
		cfg.byName[name] = sec
	}

	if len(cfg.sections) == 0 {
		return nil, fmt.Errorf("config defines no sections")
	}
	return cfg, nil
}

// Sections returns all sections in document order.
func (c *Config) Sections() []*Section {
	return c.sections
}

// Select returns the named sections in the given order, or every section in
// document order when names is empty.
func (c *Config) Select(names []string) ([]*Section, error) {
	if len(names) == 0 {
		return c.sections, nil
	}
	out := make([]*Section, 0, len(names))
	for _, name := range names {
		sec := c.byName[name]
		if sec == nil {
			return nil, fmt.Errorf("unknown section %q", name)
		}
		out = append(out, sec)
	}
	return out, nil
}

func isNull(node *yaml.Node) bool {
	return node == nil || node.Tag == "!!null"
}

// applyFallbacks fills column and date options the config left unset.
func applyFallbacks(sec *Section) {
	if sec.Date == "" {
		sec.Date = "latest"
	}
	if sec.JournalColumn == "" {
		sec.JournalColumn = "Source"
	}
	if sec.CatalogKey == "" {
		sec.CatalogKey = "Journal"
	}
	if sec.QueryColumn == "" {
		sec.QueryColumn = "Query"
	}
	if sec.CitesColumn == "" {
		sec.CitesColumn = "Cites"
	}
}

func validate(sec *Section) error {
	if sec.Class == "" {
		return fmt.Errorf("missing class (valid: %v)", ValidClasses)
	}
	valid := false
	for _, c := range ValidClasses {
		if sec.Class == c {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid class %q (valid: %v)", sec.Class, ValidClasses)
	}

	switch sec.Class {
	case "publications", "citations":
		if sec.Years == "" {
			return fmt.Errorf("class %s requires 'years'", sec.Class)
		}
		if len(sec.CitationRegisters) == 0 {
			return fmt.Errorf("class %s requires 'citation-registers'", sec.Class)
		}
	case "journals":
		if sec.JournalCatalogFile == "" {
			return fmt.Errorf("class journals requires 'journal-catalog-file'")
		}
	case "results":
		if len(sec.Groups) == 0 {
			return fmt.Errorf("class results requires 'groups'")
		}
	}
	return nil
}
