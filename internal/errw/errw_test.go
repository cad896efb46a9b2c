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

package errw_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/db47h/intcode/internal/errw"
)

type failAfter struct {
	n int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n <= 0 {
		return 0, io.ErrShortWrite
	}
	f.n--
	return len(p), nil
}

func TestWriter(t *testing.T) {
	var b bytes.Buffer
	w := errw.New(&b)
	io.WriteString(w, "1,")
	io.WriteString(w, "2")
	assert.NoError(t, w.Err)
	assert.Equal(t, "1,2", b.String())
	assert.Same(t, w, errw.New(w))
}

func TestWriter_stickyError(t *testing.T) {
	w := errw.New(&failAfter{n: 1})
	_, err := w.Write([]byte("ok"))
	assert.NoError(t, err)
	_, err = w.Write([]byte("fail"))
	assert.Error(t, err)
	n, err2 := w.Write([]byte("again"))
	assert.Zero(t, n)
	assert.Equal(t, err, err2)
	assert.Equal(t, io.ErrShortWrite, errors.Cause(w.Err))
}
