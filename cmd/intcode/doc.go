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

// The intcode command line tool runs IntCode programs with the package
// github.com/db47h/intcode/vm. It can also disassemble programs, assemble them
// from source, run amplifier chains and search noun and verb values.
//
// Usage:
//
//	intcode [flags] [program]
//
//	-amp phases
//		  find the highest amplifier signal over all orderings of phases
//	-asm
//		  the program file is assembly source
//	-config filename
//		  load settings from TOML file filename
//	-debug
//		  enable debug diagnostics
//	-disasm
//		  print a disassembly listing of the program and exit
//	-dump
//		  dump the machine state upon exit
//	-feedback
//		  run amplifiers in a feedback loop
//	-find target
//		  search the noun and verb producing target at address 0
//	-find-max int
//		  upper bound of noun and verb searches (default 99)
//	-in values
//		  append values to the input queue (comma separated, can be specified multiple times)
//	-max-steps n
//		  abort after n instructions (0 = no limit)
//	-memory int
//		  minimum memory size in cells
//	-program filename
//		  load program from file filename
//	-set addr=value
//		  set memory cell before running, addr=value (can be specified multiple times)
//	-trace
//		  log every instruction before it executes
//	-v int
//		  log verbosity
//
// The program file contains comma separated integers, or assembly source if
// -asm is set (see package github.com/db47h/intcode/asm). It can also be given
// as the first non-flag argument.
//
// By default, the program runs to completion and each output value is written
// on its own line. Output produced before an error is still written.
//
// -amp: runs one amplifier per phase setting, each on its own copy of the
// program, for every ordering of the phase settings. It writes the highest
// signal followed by the phase settings that produced it. With -feedback, the
// amplifiers run in a feedback loop until they halt.
//
// -find: runs the program with every noun and verb in [0, find-max] stored at
// addresses 1 and 2, and writes the first pair producing the target value at
// address 0, followed by 100*noun+verb.
//
// -config: settings can be loaded from a TOML file. Command line flags
// override the file, except -in and -set which add to it:
//
//	program = "day07.txt"
//	max-steps = 1000000
//
//	[amplifiers]
//	phases = [5, 6, 7, 8, 9]
//	feedback = true
//
// -trace: instructions are logged at debug level, so -trace raises the log
// verbosity as needed.
//
// -debug: will print a full stacktrace and the machine state should the
// program fail.
package main
