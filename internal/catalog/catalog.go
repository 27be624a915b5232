// Package catalog loads the immutable species and personality definitions
// shared by every fish.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed data/species.yaml
var defaultSpeciesYAML []byte

//go:embed data/personalities.yaml
var defaultPersonalitiesYAML []byte

// Catalog is a read-only handle on the loaded definitions. Fish hold pointers
// into it; nothing mutates it after Load.
type Catalog struct {
	species       map[string]*Species
	personalities map[string]*Personality
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultSpeciesYAML, defaultPersonalitiesYAML)
}

// Load reads species and personality definitions from files. An empty path
// falls back to the built-in definitions. JSON files are accepted too.
func Load(speciesPath, personalitiesPath string) (*Catalog, error) {
	speciesData := defaultSpeciesYAML
	if speciesPath != "" {
		data, err := os.ReadFile(speciesPath)
		if err != nil {
			return nil, fmt.Errorf("reading species %s: %w", speciesPath, err)
		}
		speciesData = data
	}
	personalityData := defaultPersonalitiesYAML
	if personalitiesPath != "" {
		data, err := os.ReadFile(personalitiesPath)
		if err != nil {
			return nil, fmt.Errorf("reading personalities %s: %w", personalitiesPath, err)
		}
		personalityData = data
	}
	return Parse(speciesData, personalityData)
}

// Parse builds a catalog from raw species and personality documents.
func Parse(speciesData, personalityData []byte) (*Catalog, error) {
	var rawSpecies map[string]speciesDef
	if err := yaml.Unmarshal(speciesData, &rawSpecies); err != nil {
		return nil, fmt.Errorf("parsing species: %w", err)
	}
	var rawPersonalities map[string]personalityDef
	if err := yaml.Unmarshal(personalityData, &rawPersonalities); err != nil {
		return nil, fmt.Errorf("parsing personalities: %w", err)
	}
	if len(rawSpecies) == 0 {
		return nil, fmt.Errorf("catalog has no species")
	}
	if len(rawPersonalities) == 0 {
		return nil, fmt.Errorf("catalog has no personalities")
	}

	c := &Catalog{
		species:       make(map[string]*Species, len(rawSpecies)),
		personalities: make(map[string]*Personality, len(rawPersonalities)),
	}
	for name, def := range rawSpecies {
		s, err := def.build(name)
		if err != nil {
			return nil, err
		}
		c.species[name] = s
	}
	for name, def := range rawPersonalities {
		p, err := def.build(name)
		if err != nil {
			return nil, err
		}
		c.personalities[name] = p
	}
	return c, nil
}

// Species looks up a species by its exact key.
func (c *Catalog) Species(name string) (*Species, error) {
	s, ok := c.species[name]
	if !ok {
		return nil, NotFoundError{Kind: "species", Key: name}
	}
	return s, nil
}

// Personality looks up a personality by its exact key.
func (c *Catalog) Personality(name string) (*Personality, error) {
	p, ok := c.personalities[name]
	if !ok {
		return nil, NotFoundError{Kind: "personality", Key: name}
	}
	return p, nil
}

// SpeciesNames returns the species keys in sorted order.
func (c *Catalog) SpeciesNames() []string {
	names := make([]string, 0, len(c.species))
	for name := range c.species {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PersonalityNames returns the personality keys in sorted order.
func (c *Catalog) PersonalityNames() []string {
	names := make([]string, 0, len(c.personalities))
	for name := range c.personalities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
