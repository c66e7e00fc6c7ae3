// Copyright 2019 Kazuhisa TAKEI<xtakei@rytr.jp>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barajar

import (
	"math/rand"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/seehuhn/mt19937"
)

// Source produces uniform integers in [low, high). callers guarantee low < high.
type Source interface {
	IntRange(low, high int) int
}

// SourceFunc ... adapter to use an ordinary function as Source.
type SourceFunc func(low, high int) int

func (fn SourceFunc) IntRange(low, high int) int {
	return fn(low, high)
}

// Rand is a Mersenne Twister source. not safe for concurrent use.
type Rand struct {
	r *rand.Rand
}

// New returns Rand seeded with seed. same seed, same draws.
func New(seed int64) *Rand {
	randMt := rand.New(mt19937.New())
	randMt.Seed(seed)
	return &Rand{r: randMt}
}

// NewFromPhrase returns Rand seeded with the xxhash of phrase.
func NewFromPhrase(phrase string) *Rand {
	return New(int64(xxhash.Sum64([]byte(phrase))))
}

// Seed reinitializes the generator.
func (r *Rand) Seed(seed int64) {
	r.r.Seed(seed)
}

// IntRange panics if low >= high.
func (r *Rand) IntRange(low, high int) int {
	if low >= high {
		panic("barajar: invalid argument to IntRange")
	}
	return low + r.r.Intn(high-low)
}

// FromRand adapts a math/rand generator. the caller keeps owning r.
func FromRand(r *rand.Rand) Source {
	return SourceFunc(func(low, high int) int {
		return low + r.Intn(high-low)
	})
}

// Locked serializes draws of the wrapped Source.
type Locked struct {
	mu  sync.Mutex
	src Source
}

func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) IntRange(low, high int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.IntRange(low, high)
}
