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
	"strconv"

	"github.com/pkg/errors"
)

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = iota // the parameter is the address of the operand
	Immediate             // the parameter is the operand itself
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// DecodeMode returns the addressing mode of the parameter at position pos
// (0 based) encoded in the opcode word. The mode of the first parameter is the
// hundreds digit, the second the thousands digit, and so on. Missing digits
// are 0 (Position).
func DecodeMode(word Cell, pos int) (Mode, error) {
	if pos < 0 {
		return 0, errors.Errorf("invalid parameter position %d", pos)
	}
	w := word
	if w < 0 {
		w = -w
	}
	w /= 100
	for ; pos > 0 && w != 0; pos-- {
		w /= 10
	}
	switch d := w % 10; d {
	case 0:
		return Position, nil
	case 1:
		return Immediate, nil
	default:
		return 0, errors.Wrapf(ErrBadMode, "digit %d in opcode word %d", d, word)
	}
}

// Param is a decoded instruction parameter.
type Param struct {
	Mode  Mode
	Value Cell
}

// Read returns the operand designated by p.
func (p Param) Read(i *Instance) (Cell, error) {
	if p.Mode == Immediate {
		return p.Value, nil
	}
	addr, err := i.address(p.Value)
	if err != nil {
		return 0, err
	}
	return i.Mem[addr], nil
}

// Write stores v at the address designated by p. Immediate parameters cannot be
// written to.
func (p Param) Write(i *Instance, v Cell) error {
	if p.Mode == Immediate {
		return errors.Wrapf(ErrImmediateWrite, "destination #%d", p.Value)
	}
	addr, err := i.address(p.Value)
	if err != nil {
		return err
	}
	i.Mem[addr] = v
	return nil
}

// String returns the assembler notation for p: immediate values are prefixed
// with '#', addresses are written as is.
func (p Param) String() string {
	s := strconv.FormatInt(int64(p.Value), 10)
	if p.Mode == Immediate {
		return "#" + s
	}
	return s
}

// address converts v to a valid index into i.Mem.
func (i *Instance) address(v Cell) (int, error) {
	if v < 0 {
		return 0, errors.Wrapf(ErrNegativeAddress, "address %d", v)
	}
	if v >= Cell(len(i.Mem)) {
		return 0, errors.Wrapf(ErrAddressRange, "address %d, memory size %d", v, len(i.Mem))
	}
	return int(v), nil
}
