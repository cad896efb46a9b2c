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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/errw"
	"github.com/db47h/intcode/vm"
)

// mnemonics and their aliases, the first entry is the canonical name as
// returned by vm.Opcode.String.
var opcodes = map[vm.Opcode][]string{
	vm.OpAdd:         {"add"},
	vm.OpMul:         {"mul"},
	vm.OpIn:          {"in", "inp"},
	vm.OpOut:         {"out"},
	vm.OpJumpIfTrue:  {"jnz", "jt"},
	vm.OpJumpIfFalse: {"jz", "jf"},
	vm.OpLessThan:    {"lt"},
	vm.OpEquals:      {"eq"},
	vm.OpHalt:        {"hlt", "halt"},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for op, names := range opcodes {
		for _, n := range names {
			opcodeIndex[n] = op
		}
	}
}

// Error is a single assembler error.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + e.Msg
	}
	return e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 errors.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, is an ErrAsm value.
func Assemble(name string, r io.Reader) (vm.Image, error) {
	p := newParser()
	img, err := p.Parse(name, r)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given slice to the specified io.Writer and returns the position of the next
// instruction and any write error. Cells that cannot be decoded as an
// instruction are written as a .dat directive.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := errw.New(w)
	if pc < 0 || pc >= len(mem) {
		io.WriteString(ew, "???")
		return len(mem), ew.Err
	}
	ins, err := vm.Decode(mem, pc)
	if err != nil {
		io.WriteString(ew, ".dat ")
		io.WriteString(ew, strconv.FormatInt(int64(mem[pc]), 10))
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.String())
	return pc + ins.Stride(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := errw.New(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
