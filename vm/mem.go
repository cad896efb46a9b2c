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
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/errw"
	"github.com/pkg/errors"
)

// Image encapsulates a machine's memory.
type Image []Cell

// Clone returns a copy of the image.
func (img Image) Clone() Image {
	c := make(Image, len(img))
	copy(c, img)
	return c
}

// Parse reads a program in text form: integers in base 10 separated by
// commas. White space around values is ignored, so is a trailing comma. The
// returned image size will be the largest of the number of values read and
// minSize. Extra cells are set to 0.
func Parse(r io.Reader, minSize int) (Image, error) {
	var (
		img Image
		br  = bufio.NewReader(r)
	)
	for {
		s, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read failed")
		}
		eof := err == io.EOF
		s = strings.TrimSpace(strings.TrimSuffix(s, ","))
		if s == "" {
			if eof && len(img) > 0 {
				break
			}
			if eof {
				return nil, errors.New("empty program")
			}
			return nil, errors.Errorf("missing value at position %d", len(img))
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value at position %d", len(img))
		}
		img = append(img, Cell(v))
		if eof {
			break
		}
	}
	if minSize > len(img) {
		img = append(img, make(Image, minSize-len(img))...)
	}
	return img, nil
}

// Load loads a program from file fileName. See Parse.
func Load(fileName string, minSize int) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	img, err := Parse(f, minSize)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", fileName)
	}
	return img, nil
}

// Save writes mem to the named file in the format accepted by Parse.
func Save(fileName string, mem []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "write failed")
		}
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if err = WriteImage(w, mem); err != nil {
		return errors.Wrap(err, "save failed")
	}
	return nil
}

// WriteImage writes mem to w in the format accepted by Parse, followed by a
// new line.
func WriteImage(w io.Writer, mem []Cell) error {
	ew := errw.New(w)
	writeCells(ew, mem, ',')
	ew.Write([]byte{'\n'})
	return ew.Err
}
