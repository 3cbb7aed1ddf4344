package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Suite is a YAML-defined set of script cases, used by `justdep test` and by
// the driver's own golden tests.
type Suite struct {
	Path  string
	Cases []*Case
}

// Case runs one script and compares the rendered result value, or expects a
// failure whose message contains WantError. Script and File are mutually
// exclusive; File is resolved relative to the suite file.
type Case struct {
	Name      string
	Script    string
	File      string
	Args      []string
	Want      string
	WantError string
}

type suiteDisk struct {
	Cases []caseDisk `yaml:"cases"`
}

type caseDisk struct {
	Name      string   `yaml:"name"`
	Script    string   `yaml:"script"`
	File      string   `yaml:"file"`
	Args      []string `yaml:"args"`
	Want      string   `yaml:"want"`
	WantError string   `yaml:"want_error"`
}

// LoadSuite parses a suite file, rejecting unknown fields.
func LoadSuite(path string) (*Suite, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("suite: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw suiteDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("suite: parse %s: %w", abs, err)
	}

	suite := &Suite{Path: abs}
	for i, c := range raw.Cases {
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}
		if (c.Script == "") == (c.File == "") {
			return nil, fmt.Errorf("suite: %s: %s must set exactly one of script or file", abs, name)
		}
		suite.Cases = append(suite.Cases, &Case{
			Name:      name,
			Script:    c.Script,
			File:      c.File,
			Args:      c.Args,
			Want:      strings.TrimSpace(c.Want),
			WantError: c.WantError,
		})
	}
	if len(suite.Cases) == 0 {
		return nil, fmt.Errorf("suite: %s: no cases", abs)
	}
	return suite, nil
}

// Run executes one case and returns nil when its expectation holds.
func (s *Suite) Run(c *Case) error {
	src := c.Script
	if c.File != "" {
		data, err := os.ReadFile(filepath.Join(filepath.Dir(s.Path), c.File))
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		src = string(data)
	}
	value, err := RunSource(src, c.Args)
	if c.WantError != "" {
		if err == nil {
			return fmt.Errorf("expected error containing %q, got value %s", c.WantError, value.Render())
		}
		if !strings.Contains(err.Error(), c.WantError) {
			return fmt.Errorf("expected error containing %q, got %q", c.WantError, err.Error())
		}
		return nil
	}
	if err != nil {
		return err
	}
	if got := value.Render(); got != c.Want {
		return fmt.Errorf("expected %s, got %s", c.Want, got)
	}
	return nil
}
