package library

import (
	"fmt"
	"io"
	"regexp"
	"slices"

	"github.com/diwise/library-resolver/internal/pkg/application/index"
	"github.com/diwise/library-resolver/pkg/library/dependents"
	yaml "gopkg.in/yaml.v2"
)

type SourceConfig struct {
	Endpoint   string            `yaml:"endpoint"`
	URIPattern string            `yaml:"uriPattern"`
	Headers    map[string]string `yaml:"headers"`
	Debug      bool              `yaml:"debug"`
}

type TypeConfig struct {
	Type      string `yaml:"type"`
	Container string `yaml:"container"`
	// DependentType is the type that uris found in the dependents of this
	// type are loaded as. Defaults to Type.
	DependentType  string   `yaml:"dependentType"`
	Dependents     []string `yaml:"dependents"`
	FullDependents []string `yaml:"fullDependents"`
	References     []string `yaml:"references"`
}

func (tc TypeConfig) ContainerName() string {
	if tc.Container == "" {
		return index.DefaultContainer
	}
	return tc.Container
}

func (tc TypeConfig) DependentItemType() string {
	if tc.DependentType == "" {
		return tc.Type
	}
	return tc.DependentType
}

// DependentSets builds the dependents and full dependents of the type. Names
// listed under references are declared as references even when they do not
// follow the _uri naming convention.
func (tc TypeConfig) DependentSets() (dependents.Set, dependents.Set) {
	return tc.toSet(tc.Dependents), tc.toSet(tc.FullDependents)
}

func (tc TypeConfig) toSet(names []string) dependents.Set {
	set := dependents.FromNames(names...)

	for idx := range set {
		if slices.Contains(tc.References, set[idx].Name) {
			set[idx].Kind = dependents.References
		}
	}

	return set
}

type Config struct {
	Sources []SourceConfig `yaml:"sources"`
	Types   []TypeConfig   `yaml:"types"`
}

// ContainerFor returns the container that entities of the given type are kept in
func (cfg *Config) ContainerFor(entityType string) string {
	for _, tc := range cfg.Types {
		if tc.Type == entityType {
			return tc.ContainerName()
		}
	}
	return index.DefaultContainer
}

func (cfg *Config) validate() error {
	seen := map[string]bool{}

	for _, tc := range cfg.Types {
		if tc.Type == "" {
			return fmt.Errorf("type configuration without a type name")
		}
		if seen[tc.Type] {
			return fmt.Errorf("type %s is configured more than once", tc.Type)
		}
		seen[tc.Type] = true
	}

	for _, src := range cfg.Sources {
		if src.Endpoint == "" {
			return fmt.Errorf("source configuration without an endpoint")
		}
		if _, err := regexp.Compile(src.URIPattern); err != nil {
			return fmt.Errorf("bad uri pattern for source %s: %w", src.Endpoint, err)
		}
	}

	return nil
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
