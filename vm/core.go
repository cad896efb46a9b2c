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

import "github.com/pkg/errors"

// Run starts execution of the machine and runs until a halt instruction or an
// error. It returns the values output by the program during this call.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error and the returned output holds whatever was output before the error.
//
// Calling Run on a halted instance is a no-op.
func (i *Instance) Run() ([]Cell, error) {
	return i.run(0)
}

// RunOutputs is like Run but returns as soon as n values have been output. The
// instance can then be resumed with another call to Run or RunOutputs, usually
// after feeding it new input with Feed.
func (i *Instance) RunOutputs(n int) ([]Cell, error) {
	if n <= 0 {
		return nil, nil
	}
	return i.run(n)
}

func (i *Instance) run(maxOut int) (out []Cell, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d", i.PC, len(i.Mem))
			default:
				panic(e)
			}
		}
		out, i.output = i.output, nil
	}()
	i.output = nil
	i.insCount = 0
	for i.running {
		if maxOut > 0 && len(i.output) >= maxOut {
			break
		}
		if i.maxSteps > 0 && i.insCount >= i.maxSteps {
			return nil, errors.Wrapf(ErrStepLimit, "%d instructions @pc=%d", i.insCount, i.PC)
		}
		if err = i.step(); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

// step decodes and executes a single instruction.
func (i *Instance) step() error {
	if i.trace != nil {
		i.trace(i)
	}
	ins, err := Decode(i.Mem, i.PC)
	if err != nil {
		return err
	}
	jumped, err := ins.exec(i)
	if err != nil {
		return errors.Wrapf(err, "%s @pc=%d", &ins, i.PC)
	}
	if !jumped {
		i.PC += ins.Stride()
	}
	i.insCount++
	return nil
}
