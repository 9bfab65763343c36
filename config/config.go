package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNegativeCount is returned when a topology file asks for fewer than
	// zero replicas of a latency class.
	ErrNegativeCount = errors.New("negative replica count")
	// ErrDuplicateLatency is returned when a topology file lists the same
	// latency label twice, which would give two nodes the same name.
	ErrDuplicateLatency = errors.New("duplicate latency class")
	// ErrUnknownFormat is returned for topology files that are neither JSON
	// nor YAML.
	ErrUnknownFormat = errors.New("unknown topology file format")
)

// Class is one latency label and the number of nodes that get it.
type Class struct {
	Latency string `json:"latency" yaml:"latency"`
	Count   int    `json:"count" yaml:"count"`
}

// Topology is an ordered list of latency classes. Order is significant: it
// decides the order of the generated nodes.
type Topology []Class

// Total returns the number of nodes the topology describes.
func (t Topology) Total() int {
	return lo.SumBy(t, func(c Class) int {
		if c.Count < 0 {
			return 0
		}
		return c.Count
	})
}

// topologyFile is the on-disk shape of a topology.
type topologyFile struct {
	Classes Topology `json:"classes" yaml:"classes"`
}

var defaultTopology = Topology{
	{Latency: "100ms", Count: 3},
	{Latency: "200ms", Count: 3},
	{Latency: "300ms", Count: 2},
	{Latency: "400ms", Count: 2},
}

// DefaultTopology returns a copy of the built-in latency table.
func DefaultTopology() Topology {
	var t Topology
	if err := copier.Copy(&t, &defaultTopology); err != nil {
		// both sides are Topology
		panic(err)
	}
	return t
}

// LoadTopology reads a topology from a .json, .yaml or .yml file.
func LoadTopology(fs afero.Fs, path string) (Topology, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	f := &topologyFile{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, f)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to decode topology %s: %w", path, err)
	}

	seen := make(map[string]bool, len(f.Classes))
	for _, c := range f.Classes {
		if c.Count < 0 {
			return nil, fmt.Errorf("%s: class %q: %w", path, c.Latency, ErrNegativeCount)
		}
		if seen[c.Latency] {
			return nil, fmt.Errorf("%s: class %q: %w", path, c.Latency, ErrDuplicateLatency)
		}
		seen[c.Latency] = true
	}
	return f.Classes, nil
}
