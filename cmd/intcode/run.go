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
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/drive"
	"github.com/db47h/intcode/internal/config"
	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

// loadProgram loads a program image, assembling it first if isAsm is set. The
// image is padded with zeros to at least size cells.
func loadProgram(name string, isAsm bool, size int) (vm.Image, error) {
	if !isAsm {
		mem, err := vm.Load(name, size)
		if err != nil {
			return nil, err
		}
		log.Info("program loaded", "file", name, "cells", len(mem))
		return mem, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := asm.Assemble(name, f)
	if err != nil {
		return nil, err
	}
	if len(mem) < size {
		mem = append(mem, make(vm.Image, size-len(mem))...)
	}
	log.Info("program assembled", "file", name, "cells", len(mem))
	return mem, nil
}

// trace logs the instruction about to be executed.
func trace(i *vm.Instance) {
	var b strings.Builder
	asm.Disassemble(i.Mem, i.PC, &b)
	log.Debugf("% 6d\t%s", i.PC, b.String())
}

func options(cfg *config.Config) []vm.Option {
	var opts []vm.Option
	if cfg.MaxSteps > 0 {
		opts = append(opts, vm.MaxSteps(cfg.MaxSteps))
	}
	if cfg.Trace {
		opts = append(opts, vm.Trace(trace))
	}
	return opts
}

func writeValues(w io.Writer, values ...vm.Cell) error {
	ew := errw.New(w)
	var b []byte
	for k, v := range values {
		b = b[:0]
		if k > 0 {
			b = append(b, ' ')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		ew.Write(b)
	}
	ew.Write([]byte{'\n'})
	return ew.Err
}

func disassemble(prog vm.Image, w io.Writer) error {
	return asm.DisassembleAll(prog, 0, w)
}

// runProgram runs prog with the configured input and patches, and writes each
// output value on its own line.
func runProgram(cfg *config.Config, prog vm.Image, w io.Writer) (*vm.Instance, error) {
	if err := drive.Patch(prog, cfg.Patches()); err != nil {
		return nil, err
	}
	i, err := vm.New(prog, append(options(cfg), vm.Input(cfg.Input...))...)
	if err != nil {
		return nil, err
	}
	out, err := i.Run()
	for _, v := range out {
		if e := writeValues(w, v); e != nil && err == nil {
			err = e
		}
	}
	if err != nil {
		return i, err
	}
	log.Info("halted", "instructions", i.InstructionCount(), "outputs", len(out))
	if cfg.Dump {
		err = i.Dump(w)
	}
	return i, err
}

// runAmplifiers writes the highest signal followed by the phase settings
// producing it.
func runAmplifiers(ctx context.Context, cfg *config.Config, prog vm.Image, w io.Writer) error {
	if err := drive.Patch(prog, cfg.Patches()); err != nil {
		return err
	}
	log.Info("amplifiers", "phases", cfg.Amps.Phases, "feedback", cfg.Amps.Feedback)
	s, phases, err := drive.MaxSignal(ctx, prog, cfg.Amps.Phases, cfg.Amps.Feedback, options(cfg)...)
	if err != nil {
		return err
	}
	return writeValues(w, append([]vm.Cell{s}, phases...)...)
}

// runSearch writes the noun, the verb and 100*noun+verb.
func runSearch(ctx context.Context, cfg *config.Config, prog vm.Image, w io.Writer) error {
	if err := drive.Patch(prog, cfg.Patches()); err != nil {
		return err
	}
	log.Info("searching", "target", cfg.Search.Target, "max", cfg.Search.Max)
	n, v, err := drive.FindNounVerb(ctx, prog, cfg.Search.Target, cfg.Search.Max, options(cfg)...)
	if err != nil {
		return err
	}
	return writeValues(w, n, v, 100*n+v)
}
