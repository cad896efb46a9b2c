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

package drive_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/drive"
	"github.com/db47h/intcode/vm"
)

type C []vm.Cell

var chainTests = [...]struct {
	name   string
	prog   vm.Image
	phases C
	signal vm.Cell
}{
	{"43210", vm.Image{3, 15, 3, 16, 1002, 16, 10, 16, 1, 16, 15, 15, 4, 15, 99, 0, 0},
		C{4, 3, 2, 1, 0}, 43210},
	{"54321", vm.Image{3, 23, 3, 24, 1002, 24, 10, 24, 1002, 23, -1, 23,
		101, 5, 23, 23, 1, 24, 23, 23, 4, 23, 99, 0, 0},
		C{0, 1, 2, 3, 4}, 54321},
	{"65210", vm.Image{3, 31, 3, 32, 1002, 32, 10, 32, 1001, 31, -2, 31, 1007, 31, 0, 33,
		1002, 33, 7, 33, 1, 33, 31, 31, 1, 32, 31, 31, 4, 31, 99, 0, 0, 0},
		C{1, 0, 4, 3, 2}, 65210},
}

var feedbackTests = [...]struct {
	name   string
	prog   vm.Image
	phases C
	signal vm.Cell
}{
	{"139629729", vm.Image{3, 26, 1001, 26, -4, 26, 3, 27, 1002, 27, 2, 27, 1, 27, 26,
		27, 4, 27, 1001, 28, -1, 28, 1005, 28, 6, 99, 0, 0, 5},
		C{9, 8, 7, 6, 5}, 139629729},
	{"18216", vm.Image{3, 52, 1001, 52, -5, 52, 3, 53, 1, 52, 56, 54, 1007, 54, 5, 55, 1005, 55, 26, 1001, 54,
		-5, 54, 1105, 1, 12, 1, 53, 54, 53, 1008, 54, 0, 55, 1001, 55, 1, 55, 2, 53, 55, 53, 4,
		53, 1001, 56, -1, 56, 1005, 56, 6, 99, 0, 0, 0, 0, 10},
		C{9, 7, 8, 5, 6}, 18216},
}

func TestChain(t *testing.T) {
	for _, tt := range chainTests {
		t.Run(tt.name, func(t *testing.T) {
			prog := tt.prog.Clone()
			s, err := drive.Chain(prog, tt.phases, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.signal, s)
			assert.Equal(t, tt.prog, prog, "program modified")
		})
	}
}

func TestChain_errors(t *testing.T) {
	_, err := drive.Chain(vm.Image{99}, nil, 0)
	assert.Error(t, err)
	_, err = drive.Chain(vm.Image{3, 0, 3, 0, 99}, C{1, 2}, 0)
	assert.ErrorIs(t, err, drive.ErrNoOutput)
	_, err = drive.Chain(vm.Image{3, 0, 3, 0, 3, 0, 99}, C{1}, 0)
	assert.ErrorIs(t, err, vm.ErrInputExhausted)
}

func TestFeedback(t *testing.T) {
	for _, tt := range feedbackTests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := drive.Feedback(context.Background(), tt.prog, tt.phases, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.signal, s)
		})
	}
}

func TestFeedback_errors(t *testing.T) {
	// first amplifier halts without any output
	_, err := drive.Feedback(context.Background(), vm.Image{3, 0, 99}, C{1, 2}, 0)
	assert.ErrorIs(t, err, drive.ErrNoOutput)

	// endless loop, canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = drive.Feedback(ctx, vm.Image{3, 9, 3, 9, 4, 9, 1105, 1, 2, 0}, C{0, 1}, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMaxSignal(t *testing.T) {
	for _, tt := range chainTests {
		t.Run("chain/"+tt.name, func(t *testing.T) {
			s, phases, err := drive.MaxSignal(context.Background(), tt.prog, C{0, 1, 2, 3, 4}, false)
			require.NoError(t, err)
			assert.Equal(t, tt.signal, s)
			assert.Equal(t, []vm.Cell(tt.phases), phases)
		})
	}
	for _, tt := range feedbackTests {
		t.Run("feedback/"+tt.name, func(t *testing.T) {
			s, phases, err := drive.MaxSignal(context.Background(), tt.prog, C{5, 6, 7, 8, 9}, true)
			require.NoError(t, err)
			assert.Equal(t, tt.signal, s)
			r, err := drive.Feedback(context.Background(), tt.prog, phases, 0)
			require.NoError(t, err)
			assert.Equal(t, s, r)
		})
	}
}

func TestMaxSignal_errors(t *testing.T) {
	_, _, err := drive.MaxSignal(context.Background(), vm.Image{99}, nil, false)
	assert.Error(t, err)

	_, _, err = drive.MaxSignal(context.Background(), vm.Image{3, 0, 3, 0, 77}, C{0, 1}, false)
	assert.ErrorIs(t, err, vm.ErrBadOpcode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = drive.MaxSignal(ctx, chainTests[0].prog, C{0, 1, 2, 3, 4}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPermutations(t *testing.T) {
	assert.Nil(t, drive.Permutations(nil))
	assert.Equal(t, [][]vm.Cell{{7}}, drive.Permutations(C{7}))

	in := C{1, 2, 3, 4}
	perms := drive.Permutations(in)
	require.Len(t, perms, 24)
	assert.Equal(t, []vm.Cell(in), perms[0])
	assert.Equal(t, C{1, 2, 3, 4}, in, "input modified")
	seen := make(map[[4]vm.Cell]bool)
	for _, p := range perms {
		require.Len(t, p, 4)
		assert.ElementsMatch(t, in, p)
		var k [4]vm.Cell
		copy(k[:], p)
		assert.False(t, seen[k], "duplicate permutation %v", p)
		seen[k] = true
	}
}
