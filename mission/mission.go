// Package mission loads a waypoint mission from YAML and applies it to a
// navigation.Navigation.
//
// File format:
//
//	name: yard-loop
//	nodes: [dock, gate, shed, pond, barn]
//	distances:             # row = y, col = x, -1 = no direct edge
//	  - [-1, 3, -1, 12, 2]
//	  - [ 3, -1, 2, 5, 12]
//	  - ...
//
// Unknown keys are rejected. Validate reports every problem at once;
// symmetry of the distance matrix is checked against the target
// Navigation's tolerance by Apply.
package mission

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/autonav/navigation"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidMission indicates a malformed or inconsistent mission file.
	ErrInvalidMission = errors.New("mission: invalid mission")

	// ErrNotEmpty indicates Apply was given a Navigation that already holds nodes.
	ErrNotEmpty = errors.New("mission: navigation is not empty")
)

// Mission is the decoded mission file.
type Mission struct {
	Name      string      `yaml:"name"`
	Nodes     []string    `yaml:"nodes"`
	Distances [][]float64 `yaml:"distances"`
}

// Load reads and parses the mission file at path.
func Load(path string) (*Mission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mission: %w", err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Parse decodes a single YAML document and validates it.
//
// Errors: ErrInvalidMission (decode failures included).
func Parse(data []byte) (*Mission, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Mission
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidMission)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMission, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return &m, nil
}

// Validate checks node ids and the shape and values of the distance matrix.
// All problems are returned together, each wrapping ErrInvalidMission.
func (m *Mission) Validate() error {
	var errs error
	if len(m.Nodes) == 0 {
		errs = multierr.Append(errs, fmt.Errorf("no nodes: %w", ErrInvalidMission))
	}

	seen := make(map[string]int, len(m.Nodes))
	for i, id := range m.Nodes {
		if id == "" {
			errs = multierr.Append(errs, fmt.Errorf("node %d: empty id: %w", i, ErrInvalidMission))
			continue
		}
		if j, dup := seen[id]; dup {
			errs = multierr.Append(errs, fmt.Errorf("node %d: %q repeats node %d: %w", i, id, j, ErrInvalidMission))
			continue
		}
		seen[id] = i
	}

	n := len(m.Nodes)
	if len(m.Distances) != n {
		errs = multierr.Append(errs, fmt.Errorf("distances: %d rows for %d nodes: %w", len(m.Distances), n, ErrInvalidMission))
	}
	for y, row := range m.Distances {
		if len(row) != n {
			errs = multierr.Append(errs, fmt.Errorf("distances row %d: %d cols for %d nodes: %w", y, len(row), n, ErrInvalidMission))
		}
		for x, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = multierr.Append(errs, fmt.Errorf("distances[%d][%d]=%g: %w", y, x, v, ErrInvalidMission))
			}
		}
	}

	return errs
}

// Apply registers the mission's nodes on nav in file order, sets up the
// edges and recomputes. nav must be empty. The distances are checked with
// nav's tolerance before any node is added, so a rejected mission leaves
// nav empty.
//
// Errors: ErrNotEmpty, ErrInvalidMission, and any navigation error.
func (m *Mission) Apply(nav *navigation.Navigation) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if l := nav.Len(); l != 0 {
		return fmt.Errorf("Apply: %d nodes: %w", l, ErrNotEmpty)
	}
	if err := nav.CheckEdges(m.Distances); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	for _, id := range m.Nodes {
		if _, err := nav.AddNode(navigation.Node{ID: navigation.NodeID(id)}); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}
	if err := nav.SetupEdges(m.Distances); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}
	if err := nav.Recompute(); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

// Build creates a Navigation with opts and applies m to it.
func (m *Mission) Build(opts ...navigation.Option) (*navigation.Navigation, error) {
	nav, err := navigation.New(opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Apply(nav); err != nil {
		return nil, err
	}

	return nav, nil
}

// Marshal encodes m back to YAML.
func (m *Mission) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("mission: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("mission: %w", err)
	}

	return buf.Bytes(), nil
}
