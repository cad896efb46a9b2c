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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/vm"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src     string
		minSize int
		img     vm.Image
	}{
		{"1,9,10,3,2,3,11,0,99,30,40,50\n", 0, vm.Image{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}},
		{" 3, 0 ,4,\n0, 99 ", 0, vm.Image{3, 0, 4, 0, 99}},
		{"1101,100,-1,4,0,", 0, vm.Image{1101, 100, -1, 4, 0}},
		{"99", 4, vm.Image{99, 0, 0, 0}},
		{"1,2,3", 2, vm.Image{1, 2, 3}},
	}
	for _, tt := range tests {
		img, err := vm.Parse(strings.NewReader(tt.src), tt.minSize)
		require.NoError(t, err, "%q", tt.src)
		assert.Equal(t, tt.img, img, "%q", tt.src)
	}
}

func TestParse_errors(t *testing.T) {
	for _, src := range []string{
		"",
		" \n",
		"1,,2",
		",1",
		"1,x,3",
		"1;2",
		"99999999999999999999",
	} {
		_, err := vm.Parse(strings.NewReader(src), 0)
		assert.Error(t, err, "%q", src)
	}
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prog.txt")
	mem := vm.Image{3, 0, 4, 0, 99, -12}
	require.NoError(t, vm.Save(fn, mem))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "3,0,4,0,99,-12\n", string(b))

	img, err := vm.Load(fn, 10)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 0, 4, 0, 99, -12, 0, 0, 0, 0}, img)

	_, err = vm.Load(filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
}

func TestImage_Clone(t *testing.T) {
	img := vm.Image{1, 2, 3}
	c := img.Clone()
	c[0] = 42
	assert.Equal(t, vm.Cell(1), img[0])
	assert.Len(t, c, 3)
}

func TestWriteImage(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, vm.WriteImage(&b, nil))
	assert.Equal(t, "\n", b.String())
}
