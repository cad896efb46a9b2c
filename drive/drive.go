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

// Package drive provides orchestration helpers that run IntCode machines:
// searching for the noun and verb producing a given result, and running chains
// or feedback loops of amplifiers, optionally over every permutation of their
// phase settings.
//
// Each logical machine runs in its own vm.Instance, on its own copy of the
// program. Searches run candidates concurrently.
package drive

import (
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.drive")

// Errors returned by the drivers.
var (
	ErrNotFound = errors.New("no solution found")
	ErrNoOutput = errors.New("no output")
)
