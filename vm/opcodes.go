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

// Opcode is the operation code of an instruction: the two low decimal digits of
// an opcode word.
type Opcode Cell

// IntCode opcodes.
const (
	OpAdd Opcode = iota + 1
	OpMul
	OpIn
	OpOut
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpHalt Opcode = 99
)

var opcodes = [...]struct {
	name  string
	arity int
}{
	OpAdd:         {"add", 3},
	OpMul:         {"mul", 3},
	OpIn:          {"in", 1},
	OpOut:         {"out", 1},
	OpJumpIfTrue:  {"jnz", 2},
	OpJumpIfFalse: {"jz", 2},
	OpLessThan:    {"lt", 3},
	OpEquals:      {"eq", 3},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	return op == OpHalt || op > 0 && int(op) < len(opcodes)
}

// Arity returns the number of parameters following the opcode word, or -1 if
// op is not a valid opcode.
func (op Opcode) Arity() int {
	switch {
	case op == OpHalt:
		return 0
	case op.Valid():
		return opcodes[op].arity
	}
	return -1
}

// String returns the assembler mnemonic of the opcode.
func (op Opcode) String() string {
	switch {
	case op == OpHalt:
		return "hlt"
	case op.Valid():
		return opcodes[op].name
	}
	return "???"
}
