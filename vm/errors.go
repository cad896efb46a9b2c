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

// Errors returned by the machine. All of them abort the current run. Use
// errors.Cause (or errors.Is) to check the kind of a returned error.
var (
	ErrBadOpcode       = errors.New("unrecognized opcode")
	ErrBadMode         = errors.New("undefined parameter mode")
	ErrImmediateWrite  = errors.New("cannot write in immediate mode")
	ErrNegativeAddress = errors.New("negative address")
	ErrAddressRange    = errors.New("address out of range")
	ErrInputExhausted  = errors.New("input exhausted")
	ErrStepLimit       = errors.New("step limit reached")
)
