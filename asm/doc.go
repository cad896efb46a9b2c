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

// Package asm provides utility functions to assemble and disassemble IntCode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	alias	params	description
//	------	---	-----	------	-------------------------------------------
//	1	add		a b c	c = a + b
//	2	mul		a b c	c = a * b
//	3	in	inp	a	a = next input value
//	4	out		a	output a
//	5	jnz	jt	a b	jump to b if a != 0
//	6	jz	jf	a b	jump to b if a == 0
//	7	lt		a b c	c = 1 if a < b, 0 otherwise
//	8	eq		a b c	c = 1 if a == b, 0 otherwise
//	99	hlt	halt		halt
//
// Operands:
//
// An operand is an integer literal (see strconv.ParseInt), a Go character
// literal between single quotes, a constant or a label. Operands are addresses
// (position mode) unless prefixed with '#', in which case they are immediate
// values. The assembler computes the opcode word from the mnemonic and the
// operand modes:
//
//	add #100 #-1 4	( compiles as 1101 100 -1 4 )
//	mul 4 #3 4	( compiles as 1002 4 3 4 )
//	jnz #1 #loop	( jump to the address of label loop )
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space.
//
// Raw values:
//
// Where the parser is expecting an instruction, integer literals, character
// literals, constants and label references are compiled as is. A plain list of
// integers therefore assembles to the same program:
//
//	1 9 10 3 2 3 11 0 99 30 40 50
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:) and can be used as
// operands anywhere (without the ':' prefix). Forward references are ok:
//
//	in x
//	out x
//	hlt
//	:x .dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value.
//
//	.org <value>
//
// places the next instruction at the given address. Skipped cells are 0.
//
//	.dat <value>
//
// compiles the given value, constant or label address as is.
package asm
