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

// Feed appends values to the input queue. It is meant for orchestration code
// that resumes a machine with RunOutputs; it must not be called from a Trace
// function.
func (i *Instance) Feed(values ...Cell) {
	i.input = append(i.input, values...)
}

// Pending returns a copy of the input values not yet consumed.
func (i *Instance) Pending() []Cell {
	if len(i.input) == 0 {
		return nil
	}
	return append([]Cell(nil), i.input...)
}
