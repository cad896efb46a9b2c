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

package vm

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/errw"
)

// Cell is the raw type stored in a memory location.
type Cell int64

// Instance represents an IntCode machine instance.
type Instance struct {
	PC       int   // Program Counter (aka. Instruction Pointer)
	Mem      Image // Memory image
	input    []Cell
	output   []Cell
	running  bool
	insCount int64
	maxSteps int64
	trace    func(i *Instance)
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue. Input instructions
// consume them in the order they were supplied, across multiple Input options.
func Input(values ...Cell) Option {
	return func(i *Instance) error {
		i.input = append(i.input, values...)
		return nil
	}
}

// Trace sets a function called before each instruction is decoded. The
// instance is passed with PC pointing at the opcode word about to be executed.
// The function must not modify the instance.
func Trace(fn func(i *Instance)) Option {
	return func(i *Instance) error {
		i.trace = fn
		return nil
	}
}

// MaxSteps limits the number of instructions a single run may execute. Once
// the limit is reached, the run fails with ErrStepLimit. A value <= 0 disables
// the limit (the default).
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			n = 0
		}
		i.maxSteps = n
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new IntCode machine instance.
//
// The mem parameter becomes the instance's working memory and is modified in
// place while the program runs. Callers that need to keep the original program
// should pass a copy (see Image.Clone).
//
// Options will be set by calling SetOptions.
func New(mem Image, opts ...Option) (*Instance, error) {
	i := &Instance{
		PC:      0,
		Mem:     mem,
		running: true,
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Halted returns true once a halt instruction has been executed.
func (i *Instance) Halted() bool {
	return !i.running
}

// InstructionCount returns the number of instructions executed by the last
// run.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the PC, the pending input and the memory image to the specified
// io.Writer, one per line. Memory is written in the same comma separated
// format as accepted by Parse.
func (i *Instance) Dump(w io.Writer) error {
	ew := errw.New(w)
	io.WriteString(ew, "pc: ")
	io.WriteString(ew, strconv.Itoa(i.PC))
	io.WriteString(ew, "\ninput: ")
	writeCells(ew, i.input, ' ')
	io.WriteString(ew, "\nmem: ")
	writeCells(ew, i.Mem, ',')
	ew.Write([]byte{'\n'})
	return ew.Err
}

func writeCells(w io.Writer, a []Cell, sep byte) {
	var b []byte
	for k, v := range a {
		b = b[:0]
		if k > 0 {
			b = append(b, sep)
		}
		b = strconv.AppendInt(b, int64(v), 10)
		w.Write(b)
	}
}
