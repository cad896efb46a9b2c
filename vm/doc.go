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

// Package vm implements the IntCode machine.
//
// An IntCode program is a list of integers, loaded into memory starting at
// address 0. The machine repeatedly decodes the instruction at the PC (aka.
// Instruction Pointer), executes it, and moves the PC past the instruction
// unless the instruction was a jump. Since code and data share the same
// memory, programs may modify their own code; instructions are decoded from
// the current memory contents at every step.
//
// The two low decimal digits of an opcode word select the operation:
//
//	opcode	asm	params	description
//	------	---	------	-------------------------------------------
//	1	add	a b c	c = a + b
//	2	mul	a b c	c = a * b
//	3	in	a	a = next input value
//	4	out	a	output a
//	5	jnz	a b	jump to b if a != 0
//	6	jz	a b	jump to b if a == 0
//	7	lt	a b c	c = 1 if a < b, 0 otherwise
//	8	eq	a b c	c = 1 if a == b, 0 otherwise
//	99	hlt		halt
//
// The remaining digits give the addressing mode of each parameter, starting
// with the hundreds digit for the first parameter: 0 means the parameter is
// the address of the operand (Position), 1 means the parameter is the operand
// itself (Immediate). Destination parameters must use Position mode.
//
// Input values are supplied up front with the Input option and consumed in
// order. Values output by the program are returned by Run. Any error aborts
// the run; see the Err* variables for the possible causes.
package vm
