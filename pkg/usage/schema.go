package usage

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schema is the YAML form of a program's arguments.
type Schema struct {
	Program     string     `yaml:"program"`
	Syntax      string     `yaml:"syntax"`
	Description string     `yaml:"description"`
	Arguments   []Argument `yaml:"arguments"`
}

// Declare adds the arguments described by a YAML schema document. Program,
// syntax and description only fill fields that are still empty.
func (u *Usage) Declare(data []byte) error {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to parse usage schema: %w", err)
	}
	if len(s.Arguments) == 0 {
		return fmt.Errorf("usage schema has no arguments")
	}

	if u.ProgramName == "" {
		u.ProgramName = s.Program
	}
	if u.Syntax == "" {
		u.Syntax = s.Syntax
	}
	if u.Description == "" {
		u.Description = s.Description
	}
	for _, a := range s.Arguments {
		u.Add(a)
	}
	return nil
}
