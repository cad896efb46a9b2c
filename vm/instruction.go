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
	"strings"

	"github.com/pkg/errors"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Op     Opcode
	params [3]Param
	n      int
}

// Decode decodes the instruction at position pc in mem.
func Decode(mem []Cell, pc int) (Instruction, error) {
	if pc < 0 {
		return Instruction{}, errors.Wrapf(ErrNegativeAddress, "pc %d", pc)
	}
	if pc >= len(mem) {
		return Instruction{}, errors.Wrapf(ErrAddressRange, "pc %d, memory size %d", pc, len(mem))
	}
	word := mem[pc]
	op := Opcode(word % 100)
	n := op.Arity()
	if n < 0 {
		return Instruction{}, errors.Wrapf(ErrBadOpcode, "opcode %d (word %d) @pc=%d", op, word, pc)
	}
	if pc+n >= len(mem) {
		return Instruction{}, errors.Wrapf(ErrAddressRange, "%s @pc=%d needs %d parameters, memory size %d", op, pc, n, len(mem))
	}
	ins := Instruction{Op: op, n: n}
	for k := 0; k < n; k++ {
		m, err := DecodeMode(word, k)
		if err != nil {
			return Instruction{}, errors.Wrapf(err, "parameter %d @pc=%d", k+1, pc)
		}
		ins.params[k] = Param{m, mem[pc+1+k]}
	}
	return ins, nil
}

// Params returns the instruction parameters.
func (ins *Instruction) Params() []Param {
	return ins.params[:ins.n]
}

// Stride returns the number of cells used by the instruction, including the
// opcode word. This is how far the PC moves after executing the instruction,
// unless a jump is taken.
func (ins *Instruction) Stride() int {
	return ins.n + 1
}

func (ins *Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for _, p := range ins.Params() {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

func bool2Cell(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// exec applies the effect of the instruction to i. It returns true if the PC
// has been set by a jump.
func (ins *Instruction) exec(i *Instance) (jumped bool, err error) {
	p := ins.params[:ins.n]
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		var a, b, v Cell
		if a, err = p[0].Read(i); err != nil {
			return false, err
		}
		if b, err = p[1].Read(i); err != nil {
			return false, err
		}
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLessThan:
			v = bool2Cell(a < b)
		case OpEquals:
			v = bool2Cell(a == b)
		}
		return false, p[2].Write(i, v)
	case OpIn:
		if len(i.input) == 0 {
			return false, ErrInputExhausted
		}
		if err = p[0].Write(i, i.input[0]); err != nil {
			return false, err
		}
		i.input = i.input[1:]
	case OpOut:
		v, err := p[0].Read(i)
		if err != nil {
			return false, err
		}
		i.output = append(i.output, v)
	case OpJumpIfTrue, OpJumpIfFalse:
		c, err := p[0].Read(i)
		if err != nil {
			return false, err
		}
		if (c != 0) != (ins.Op == OpJumpIfTrue) {
			return false, nil
		}
		t, err := p[1].Read(i)
		if err != nil {
			return false, err
		}
		if Cell(int(t)) != t {
			return false, errors.Wrapf(ErrAddressRange, "jump target %d", t)
		}
		i.PC = int(t)
		return true, nil
	case OpHalt:
		i.running = false
	}
	return false, nil
}
