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

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/intcode/vm"
)

// Chain runs one amplifier per phase setting in series. Each amplifier runs its
// own copy of prog and gets two input values: its phase setting and the input
// signal. Its first output becomes the input signal of the next amplifier. The
// first amplifier gets the given signal; Chain returns the signal output by the
// last amplifier.
func Chain(prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errors.New("no amplifiers")
	}
	for k, ph := range phases {
		i, err := vm.New(prog.Clone(), withInput(opts, ph, signal)...)
		if err != nil {
			return 0, err
		}
		out, err := i.Run()
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", k)
		}
		if len(out) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "amplifier %d", k)
		}
		signal = out[0]
	}
	return signal, nil
}

// Feedback runs amplifiers in a feedback loop: the output of the last
// amplifier is fed back to the first one. Amplifiers keep their state across
// rounds; the first input of each is its phase setting. The loop stops when an
// amplifier halts. Feedback returns the last signal output by the last
// amplifier.
func Feedback(ctx context.Context, prog vm.Image, phases []vm.Cell, signal vm.Cell, opts ...vm.Option) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, errors.New("no amplifiers")
	}
	amps := make([]*vm.Instance, len(phases))
	for k, ph := range phases {
		i, err := vm.New(prog.Clone(), withInput(opts, ph)...)
		if err != nil {
			return 0, err
		}
		amps[k] = i
	}

	var (
		thrust vm.Cell
		ok     bool
	)
	for round := 0; ; round++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		for k, a := range amps {
			a.Feed(signal)
			out, err := a.RunOutputs(1)
			if err != nil {
				return 0, errors.Wrapf(err, "amplifier %d, round %d", k, round)
			}
			if len(out) == 0 {
				if !ok {
					return 0, errors.Wrapf(ErrNoOutput, "amplifier %d halted in round %d", k, round)
				}
				return thrust, nil
			}
			signal = out[0]
			if k == len(amps)-1 {
				thrust, ok = signal, true
			}
		}
	}
}

// withInput returns a copy of opts with an extra Input option. opts may be
// shared between goroutines so it is never appended to in place.
func withInput(opts []vm.Option, values ...vm.Cell) []vm.Option {
	o := make([]vm.Option, 0, len(opts)+1)
	o = append(o, opts...)
	return append(o, vm.Input(values...))
}

// Permutations returns all the permutations of values.
func Permutations(values []vm.Cell) [][]vm.Cell {
	if len(values) == 0 {
		return nil
	}
	a := append([]vm.Cell(nil), values...)
	perms := [][]vm.Cell{append([]vm.Cell(nil), a...)}
	c := make([]int, len(a))
	for k := 1; k < len(a); {
		if c[k] < k {
			if k%2 == 0 {
				a[0], a[k] = a[k], a[0]
			} else {
				a[c[k]], a[k] = a[k], a[c[k]]
			}
			perms = append(perms, append([]vm.Cell(nil), a...))
			c[k]++
			k = 1
		} else {
			c[k] = 0
			k++
		}
	}
	return perms
}

// MaxSignal runs Chain, or Feedback if feedback is true, with an initial signal
// of 0 for every permutation of the given phase settings. It returns the
// highest signal and the phase settings that produced it.
func MaxSignal(ctx context.Context, prog vm.Image, phases []vm.Cell, feedback bool, opts ...vm.Option) (vm.Cell, []vm.Cell, error) {
	perms := Permutations(phases)
	if len(perms) == 0 {
		return 0, nil, errors.New("no amplifiers")
	}
	signals := make([]vm.Cell, len(perms))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, p := range perms {
		k, p := k, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				s   vm.Cell
				err error
			)
			if feedback {
				s, err = Feedback(ctx, prog, p, 0, opts...)
			} else {
				s, err = Chain(prog, p, 0, opts...)
			}
			if err != nil {
				return errors.Wrapf(err, "phases %v", p)
			}
			log.Debug("amplifiers done", "phases", p, "signal", s)
			signals[k] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}
	best := 0
	for k, s := range signals {
		if s > signals[best] {
			best = k
		}
	}
	return signals[best], perms[best], nil
}
