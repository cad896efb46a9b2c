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

package drive

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/intcode/vm"
)

// Patch sets the memory cells at the given addresses.
func Patch(mem vm.Image, values map[int]vm.Cell) error {
	addrs := make([]int, 0, len(values))
	for a := range values {
		addrs = append(addrs, a)
	}
	sort.Ints(addrs)
	for _, a := range addrs {
		if a < 0 || a >= len(mem) {
			return errors.Errorf("patch address %d out of range, memory size %d", a, len(mem))
		}
		mem[a] = values[a]
	}
	return nil
}

// RunNounVerb runs a copy of prog with the noun and verb stored at addresses 1
// and 2 and returns the value left at address 0.
func RunNounVerb(prog vm.Image, noun, verb vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	mem := prog.Clone()
	if err := Patch(mem, map[int]vm.Cell{1: noun, 2: verb}); err != nil {
		return 0, err
	}
	i, err := vm.New(mem, opts...)
	if err != nil {
		return 0, err
	}
	if _, err = i.Run(); err != nil {
		return 0, errors.Wrapf(err, "noun %d, verb %d", noun, verb)
	}
	return mem[0], nil
}

// FindNounVerb searches for the noun and verb, both in the range [0, limit], for
// which RunNounVerb returns target. If several pairs match, the one with the
// lowest noun, then the lowest verb, is returned.
//
// Candidates that fail to run are not a match.
func FindNounVerb(ctx context.Context, prog vm.Image, target vm.Cell, limit int, opts ...vm.Option) (noun, verb vm.Cell, err error) {
	if limit < 0 {
		return 0, 0, errors.Errorf("invalid search range [0, %d]", limit)
	}
	// found[n] is the first matching verb for noun n, or -1.
	found := make([]vm.Cell, limit+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n := 0; n <= limit; n++ {
		found[n] = -1
		n := n
		g.Go(func() error {
			for v := 0; v <= limit; v++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				r, err := RunNounVerb(prog, vm.Cell(n), vm.Cell(v), opts...)
				if err != nil {
					log.Debugf("candidate failed: %v", err)
					continue
				}
				if r == target {
					found[n] = vm.Cell(v)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	for n, v := range found {
		if v >= 0 {
			log.Info("found noun and verb", "noun", n, "verb", v, "target", target)
			return vm.Cell(n), v, nil
		}
	}
	return 0, 0, errors.Wrapf(ErrNotFound, "target %d", target)
}
