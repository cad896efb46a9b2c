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

package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

func TestDecodeMode(t *testing.T) {
	tests := []struct {
		word vm.Cell
		pos  int
		mode vm.Mode
	}{
		{10, 0, vm.Position},
		{100, 0, vm.Immediate},
		{1002, 0, vm.Position},
		{1002, 1, vm.Immediate},
		{1002, 2, vm.Position},
		{11101, 2, vm.Immediate},
		{10001, 1, vm.Position},
		{10001, 2, vm.Immediate},
		{-1101, 0, vm.Immediate},
		{1, 5, vm.Position},
		{99, 0, vm.Position},
	}
	for _, tt := range tests {
		m, err := vm.DecodeMode(tt.word, tt.pos)
		require.NoError(t, err, "word %d, pos %d", tt.word, tt.pos)
		assert.Equal(t, tt.mode, m, "word %d, pos %d", tt.word, tt.pos)
	}

	bad := []struct {
		word vm.Cell
		pos  int
	}{
		{201, 0},
		{2001, 1},
		{90001, 2},
		{-301, 0},
	}
	for _, tt := range bad {
		_, err := vm.DecodeMode(tt.word, tt.pos)
		assert.ErrorIs(t, err, vm.ErrBadMode, "word %d, pos %d", tt.word, tt.pos)
	}

	_, err := vm.DecodeMode(1, -1)
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		code   C
		pc     int
		str    string
		op     vm.Opcode
		stride int
	}{
		{C{1, 9, 10, 3}, 0, "add 9 10 3", vm.OpAdd, 4},
		{C{1002, 4, 3, 4}, 0, "mul 4 #3 4", vm.OpMul, 4},
		{C{0, 3, 12}, 1, "in 12", vm.OpIn, 2},
		{C{104, -7}, 0, "out #-7", vm.OpOut, 2},
		{C{1105, 0, 7}, 0, "jnz #0 #7", vm.OpJumpIfTrue, 3},
		{C{6, 12, 15}, 0, "jz 12 15", vm.OpJumpIfFalse, 3},
		{C{1107, -1, 8, 3}, 0, "lt #-1 #8 3", vm.OpLessThan, 4},
		{C{108, -1, 8, 3}, 0, "eq #-1 8 3", vm.OpEquals, 4},
		{C{99}, 0, "hlt", vm.OpHalt, 1},
		{C{1199}, 0, "hlt", vm.OpHalt, 1},
	}
	for _, tt := range tests {
		ins, err := vm.Decode(tt.code, tt.pc)
		require.NoError(t, err)
		assert.Equal(t, tt.op, ins.Op)
		assert.Equal(t, tt.str, ins.String())
		assert.Equal(t, tt.stride, ins.Stride())
		assert.Len(t, ins.Params(), tt.stride-1)
	}

	_, err := vm.Decode(C{1, 0, 0, 0}, 4)
	assert.ErrorIs(t, err, vm.ErrAddressRange)
	_, err = vm.Decode(C{1, 0, 0, 0}, -1)
	assert.ErrorIs(t, err, vm.ErrNegativeAddress)
	_, err = vm.Decode(C{12}, 0)
	assert.ErrorIs(t, err, vm.ErrBadOpcode)
}

func TestOpcode(t *testing.T) {
	arity := map[vm.Opcode]int{
		vm.OpAdd: 3, vm.OpMul: 3, vm.OpIn: 1, vm.OpOut: 1,
		vm.OpJumpIfTrue: 2, vm.OpJumpIfFalse: 2, vm.OpLessThan: 3, vm.OpEquals: 3,
		vm.OpHalt: 0,
	}
	for op, n := range arity {
		assert.True(t, op.Valid(), "%d", op)
		assert.Equal(t, n, op.Arity(), "%s", op)
	}
	for _, op := range []vm.Opcode{0, 9, 10, 98, -1, 100} {
		assert.False(t, op.Valid(), "%d", op)
		assert.Equal(t, -1, op.Arity())
		assert.Equal(t, "???", op.String())
	}
}

func TestParam(t *testing.T) {
	i, err := vm.New(vm.Image{10, 20, 30})
	require.NoError(t, err)

	v, err := vm.Param{Mode: vm.Position, Value: 2}.Read(i)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(30), v)

	v, err = vm.Param{Mode: vm.Immediate, Value: 2}.Read(i)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(2), v)

	require.NoError(t, vm.Param{Mode: vm.Position, Value: 0}.Write(i, 5))
	assert.Equal(t, vm.Cell(5), i.Mem[0])

	err = vm.Param{Mode: vm.Immediate, Value: 0}.Write(i, 7)
	assert.ErrorIs(t, err, vm.ErrImmediateWrite)
	assert.ErrorContains(t, err, "cannot write in immediate mode")
	assert.Equal(t, vm.Cell(5), i.Mem[0])

	_, err = vm.Param{Mode: vm.Position, Value: -1}.Read(i)
	assert.ErrorIs(t, err, vm.ErrNegativeAddress)
	err = vm.Param{Mode: vm.Position, Value: -1}.Write(i, 1)
	assert.ErrorIs(t, err, vm.ErrNegativeAddress)
	_, err = vm.Param{Mode: vm.Position, Value: 3}.Read(i)
	assert.ErrorIs(t, err, vm.ErrAddressRange)

	assert.Equal(t, "#-3", vm.Param{Mode: vm.Immediate, Value: -3}.String())
	assert.Equal(t, "12", vm.Param{Mode: vm.Position, Value: 12}.String())
	assert.Equal(t, "immediate", vm.Immediate.String())
	assert.Equal(t, "position", vm.Position.String())
}
