// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the TOML configuration file of the intcode command.
//
// Example:
//
//	program = "day05.txt"
//	input = [5]
//	max-steps = 1000000
//
//	[[set]]
//	address = 1
//	value = 12
//
//	[amplifiers]
//	phases = [5, 6, 7, 8, 9]
//	feedback = true
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// DefaultSearchMax is the upper bound of noun and verb searches when the
// configuration does not set one.
const DefaultSearchMax = 99

// Config holds the settings of a run.
type Config struct {
	Program   string      `toml:"program"`
	Asm       bool        `toml:"asm"`
	Memory    int         `toml:"memory"`
	Input     []vm.Cell   `toml:"input"`
	MaxSteps  int64       `toml:"max-steps"`
	Trace     bool        `toml:"trace"`
	Dump      bool        `toml:"dump"`
	Verbosity int         `toml:"verbosity"`
	Set       []Patch     `toml:"set"`
	Amps      *Amplifiers `toml:"amplifiers"`
	Search    *Search     `toml:"search"`

	// Dir is the directory containing the configuration file.
	Dir string `toml:"-"`
}

// Patch sets a memory cell before the program runs.
type Patch struct {
	Address int     `toml:"address"`
	Value   vm.Cell `toml:"value"`
}

// Amplifiers configures an amplifier chain or feedback loop. All permutations
// of Phases are tried with an initial signal of 0.
type Amplifiers struct {
	Phases   []vm.Cell `toml:"phases"`
	Feedback bool      `toml:"feedback"`
}

// Search configures a noun and verb search.
type Search struct {
	Target vm.Cell `toml:"target"`
	Max    int     `toml:"max"`
}

// Load reads the configuration file at path. A relative program path is
// resolved against the directory of the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read configuration")
	}
	c, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parse error in %s", path)
	}
	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot resolve path %s", path)
	}
	if c.Program != "" && !filepath.IsAbs(c.Program) {
		c.Program = filepath.Join(c.Dir, c.Program)
	}
	return c, nil
}

// Parse decodes a configuration from TOML text. Unknown keys are an error.
func Parse(data string) (*Config, error) {
	var c Config
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, err
	}
	if u := md.Undecoded(); len(u) > 0 {
		return nil, errors.Errorf("unknown key %q", u[0].String())
	}
	if err = c.validate(); err != nil {
		return nil, err
	}
	if c.Search != nil && c.Search.Max == 0 {
		c.Search.Max = DefaultSearchMax
	}
	return &c, nil
}

func (c *Config) validate() error {
	switch {
	case c.Memory < 0:
		return errors.Errorf("invalid memory size %d", c.Memory)
	case c.MaxSteps < 0:
		return errors.Errorf("invalid max-steps %d", c.MaxSteps)
	case c.Amps != nil && len(c.Amps.Phases) == 0:
		return errors.New("amplifiers: no phase settings")
	case c.Amps != nil && c.Search != nil:
		return errors.New("amplifiers and search are mutually exclusive")
	case c.Search != nil && c.Search.Max < 0:
		return errors.Errorf("search: invalid max %d", c.Search.Max)
	}
	for _, p := range c.Set {
		if p.Address < 0 {
			return errors.Errorf("set: negative address %d", p.Address)
		}
	}
	return nil
}

// Patches returns the [[set]] entries as an address to value map. Later
// entries override earlier ones.
func (c *Config) Patches() map[int]vm.Cell {
	if len(c.Set) == 0 {
		return nil
	}
	m := make(map[int]vm.Cell, len(c.Set))
	for _, p := range c.Set {
		m[p.Address] = p.Value
	}
	return m
}
