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

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/vm"
)

// cellList is a flag.Value accumulating comma separated integers. It can be
// specified multiple times.
type cellList []vm.Cell

func (l *cellList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

// Set parses base 10 values, like program files. The list is left unchanged
// if any value is invalid.
func (l *cellList) Set(s string) error {
	fields := strings.Split(s, ",")
	values := make([]vm.Cell, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return errors.Errorf("invalid value %q", f)
		}
		values = append(values, vm.Cell(v))
	}
	*l = append(*l, values...)
	return nil
}

func (l *cellList) Get() interface{} { return *l }

// patchList is a flag.Value for addr=value memory patches.
type patchList []config.Patch

func (p *patchList) String() string {
	if p == nil {
		return ""
	}
	s := make([]string, len(*p))
	for k, v := range *p {
		s[k] = fmt.Sprintf("%d=%d", v.Address, v.Value)
	}
	return strings.Join(s, ",")
}

func (p *patchList) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return errors.Errorf("invalid patch %q, expected addr=value", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil || addr < 0 {
		return errors.Errorf("invalid address in %q", s)
	}
	val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return errors.Errorf("invalid value in %q", s)
	}
	*p = append(*p, config.Patch{Address: addr, Value: vm.Cell(val)})
	return nil
}

func (p *patchList) Get() interface{} { return *p }

var (
	debug bool
	log   = commonlog.GetLogger("intcode")
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		if i.PC >= 0 && i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "PC: %v (%v), Input: %v\n", i.PC, i.Mem[i.PC], i.Pending())
		} else {
			fmt.Fprintf(os.Stderr, "PC: %v, Input: %v\n", i.PC, i.Pending())
		}
	}
	os.Exit(1)
}

// parseFlags loads the configuration file, if any, and applies the command
// line flags over it.
func parseFlags(fs *flag.FlagSet, args []string) (*config.Config, bool, error) {
	var (
		cfgFile   string
		input     cellList
		phases    cellList
		patches   patchList
		disasm    bool
		feedback  bool
		target    int64
		searchMax int
		c         config.Config
	)
	fs.StringVar(&cfgFile, "config", "", "load settings from TOML file `filename`")
	fs.StringVar(&c.Program, "program", "", "load program from file `filename`")
	fs.BoolVar(&c.Asm, "asm", false, "the program file is assembly source")
	fs.IntVar(&c.Memory, "memory", 0, "minimum memory size in cells")
	fs.Var(&input, "in", "append `values` to the input queue (comma separated, can be specified multiple times)")
	fs.Var(&patches, "set", "set memory cell before running, `addr=value` (can be specified multiple times)")
	fs.Int64Var(&c.MaxSteps, "max-steps", 0, "abort after `n` instructions (0 = no limit)")
	fs.BoolVar(&c.Trace, "trace", false, "log every instruction before it executes")
	fs.BoolVar(&c.Dump, "dump", false, "dump the machine state upon exit")
	fs.IntVar(&c.Verbosity, "v", 0, "log verbosity")
	fs.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	fs.Var(&phases, "amp", "find the highest amplifier signal over all orderings of `phases`")
	fs.BoolVar(&feedback, "feedback", false, "run amplifiers in a feedback loop")
	fs.Int64Var(&target, "find", 0, "search the noun and verb producing `target` at address 0")
	fs.IntVar(&searchMax, "find-max", config.DefaultSearchMax, "upper bound of noun and verb searches")
	fs.BoolVar(&disasm, "disasm", false, "print a disassembly listing of the program and exit")

	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	cfg := &c
	if cfgFile != "" {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return nil, false, err
		}
	}

	// flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "program":
			cfg.Program = c.Program
		case "asm":
			cfg.Asm = c.Asm
		case "memory":
			cfg.Memory = c.Memory
		case "in":
			cfg.Input = append(cfg.Input, input...)
		case "set":
			cfg.Set = append(cfg.Set, patches...)
		case "max-steps":
			cfg.MaxSteps = c.MaxSteps
		case "trace":
			cfg.Trace = c.Trace
		case "dump":
			cfg.Dump = c.Dump
		case "v":
			cfg.Verbosity = c.Verbosity
		case "amp":
			cfg.Amps = &config.Amplifiers{Phases: phases}
			cfg.Search = nil
		case "find":
			cfg.Search = &config.Search{Target: vm.Cell(target), Max: searchMax}
			cfg.Amps = nil
		case "find-max":
			// visited after "find"
			if cfg.Search != nil {
				cfg.Search.Max = searchMax
			}
		}
	})
	if feedback {
		if cfg.Amps == nil {
			return nil, false, errors.New("-feedback requires amplifier phases")
		}
		cfg.Amps.Feedback = true
	}
	if cfg.Program == "" && fs.NArg() > 0 {
		cfg.Program = fs.Arg(0)
	}
	if cfg.Program == "" {
		return nil, false, errors.New("no program file")
	}
	if debug && cfg.Verbosity < 2 {
		cfg.Verbosity = 2
	}
	return cfg, disasm, nil
}

func main() {
	var (
		err error
		i   *vm.Instance
	)

	stdout := bufio.NewWriter(os.Stdout)
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "flush failed")
		}
		atExit(i, err)
	}()

	cfg, disasm, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return
	}
	verbosity := cfg.Verbosity
	if cfg.Trace && verbosity < 2 {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	prog, err := loadProgram(cfg.Program, cfg.Asm, cfg.Memory)
	if err != nil {
		return
	}

	switch {
	case disasm:
		err = disassemble(prog, stdout)
	case cfg.Amps != nil:
		err = runAmplifiers(ctx, cfg, prog, stdout)
	case cfg.Search != nil:
		err = runSearch(ctx, cfg, prog, stdout)
	default:
		i, err = runProgram(cfg, prog, stdout)
	}
}
