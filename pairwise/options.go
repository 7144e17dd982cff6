// SPDX-License-Identifier: MIT

// Package pairwise: functional configuration for table construction.
package pairwise

import "fmt"

// DefaultDiffMode is the difference computation used when no option is given.
const DefaultDiffMode = AbsDiff

const panicDiffModeInvalid = "pairwise: WithDiffMode: unknown mode %d"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	mode DiffMode // DefaultDiffMode
}

// WithDiffMode selects how |x[a] − x[b]| is computed.
// Panics if mode is not AbsDiff or LegacyCompare.
func WithDiffMode(mode DiffMode) Option {
	if mode != AbsDiff && mode != LegacyCompare {
		panic(fmt.Sprintf(panicDiffModeInvalid, int(mode)))
	}

	return func(o *Options) { o.mode = mode }
}

// gatherOptions applies opts over defaults in order (last writer wins).
func gatherOptions(opts ...Option) Options {
	o := Options{mode: DefaultDiffMode}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
