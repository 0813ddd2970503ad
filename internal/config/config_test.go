package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse_DefaultsMerged(t *testing.T) {
	cfg, err := Parse([]byte(`
defaults:
  class: publications
  years: 2000-2016
  date: latest
  citation-registers: [Scopus, WoS]
  output-dir: data

ecology:

chemistry:
  years: 2005-2016
  citation-registers: [Scopus, WoS, GS]
`))
	if err != nil {
		t.Fatal(err)
	}

	eco, err := cfg.Select([]string{"ecology"})
	if err != nil {
		t.Fatal(err)
	}
	if eco[0].Years != "2000-2016" {
		t.Errorf("expected defaults years, got %s", eco[0].Years)
	}
	if want := []string{"Scopus", "WoS"}; !reflect.DeepEqual(eco[0].CitationRegisters, want) {
		t.Errorf("expected registers %v, got %v", want, eco[0].CitationRegisters)
	}

	chem, err := cfg.Select([]string{"chemistry"})
	if err != nil {
		t.Fatal(err)
	}
	if chem[0].Years != "2005-2016" {
		t.Errorf("section value should override defaults, got %s", chem[0].Years)
	}
	if len(chem[0].CitationRegisters) != 3 {
		t.Errorf("list should replace wholesale, got %v", chem[0].CitationRegisters)
	}
	if chem[0].OutputDir != "data" {
		t.Errorf("untouched defaults should survive, got %q", chem[0].OutputDir)
	}
}

func TestParse_DocumentOrderPreserved(t *testing.T) {
	cfg, err := Parse([]byte(`
zeta:
  class: publications
  years: 2000-2001
  citation-registers: [Scopus]
alpha:
  class: publications
  years: 2000-2001
  citation-registers: [Scopus]
`))
	if err != nil {
		t.Fatal(err)
	}

	sections := cfg.Sections()
	if sections[0].Name != "zeta" || sections[1].Name != "alpha" {
		t.Errorf("expected document order zeta, alpha; got %s, %s", sections[0].Name, sections[1].Name)
	}
}

func TestSelect_ExplicitOrder(t *testing.T) {
	cfg, err := Parse([]byte(`
a:
  class: results
  groups: [KB]
b:
  class: results
  groups: [KB]
`))
	if err != nil {
		t.Fatal(err)
	}

	got, err := cfg.Select([]string{"b", "a"})
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Name != "b" || got[1].Name != "a" {
		t.Errorf("expected selection order b, a; got %s, %s", got[0].Name, got[1].Name)
	}

	if _, err := cfg.Select([]string{"missing"}); err == nil {
		t.Error("expected error for unknown section")
	}
}

func TestParse_Fallbacks(t *testing.T) {
	cfg, err := Parse([]byte(`
eco:
  class: journals
  journal-catalog-file: catalog.csv
`))
	if err != nil {
		t.Fatal(err)
	}

	sec := cfg.Sections()[0]
	if sec.Date != "latest" {
		t.Errorf("expected date latest, got %q", sec.Date)
	}
	if sec.JournalColumn != "Source" || sec.CatalogKey != "Journal" {
		t.Errorf("expected journal column fallbacks, got %q/%q", sec.JournalColumn, sec.CatalogKey)
	}
	if sec.CitesColumn != "Cites" || sec.QueryColumn != "Query" {
		t.Errorf("expected column fallbacks, got %q/%q", sec.CitesColumn, sec.QueryColumn)
	}
}

func TestParse_Validation(t *testing.T) {
	for name, doc := range map[string]string{
		"missing class":     "eco:\n  years: 2000-2001\n",
		"unknown class":     "eco:\n  class: pivot\n",
		"missing years":     "eco:\n  class: publications\n  citation-registers: [Scopus]\n",
		"missing registers": "eco:\n  class: citations\n  years: 2000-2001\n",
		"missing catalog":   "eco:\n  class: journals\n",
		"missing groups":    "eco:\n  class: results\n",
		"no sections":       "defaults:\n  class: publications\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
eco:
  class: publications
  years: 2000-2016
  citation-registers: [Scopus]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Sections()) != 1 {
		t.Fatalf("expected 1 section, got %d", len(cfg.Sections()))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
