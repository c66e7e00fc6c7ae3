// Copyright 2019 Kazuhisa TAKEI<xtakei@rytr.jp>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package barajar shuffles sequences in place.
//
// To shuffle a slice: (list is slice)
//   barajar.Slice(list, nil)
//
// To shuffle with a reproducible order:
//   barajar.Slice(list, barajar.New(42))

package barajar

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	ErrInvalidArgument error = errors.New("sequence must not be nil")
)

// Sequence is the capability Shuffle needs. any sort.Interface is a Sequence.
type Sequence interface {
	Len() int
	Swap(i, j int)
}

// List ... sequence with indexed read and write.
type List[E any] interface {
	Len() int
	At(i int) E
	Set(i int, v E)
}

// Shuffle is shuffling seq in place with Fisher-Yates and returns seq.
// if rng is nil, Default() is used. if seq is nil, return ErrInvalidArgument.
func Shuffle[C Sequence](seq C, rng Source) (C, error) {
	if isNil(seq) {
		return seq, ErrInvalidArgument
	}
	if rng == nil {
		rng = Default()
	}

	permute(seq.Len(), seq.Swap, rng)
	return seq, nil
}

// ShuffleList ... Shuffle for List. elements are exchanged through At/Set.
func ShuffleList[E any](list List[E], rng Source) (List[E], error) {
	if isNil(list) {
		return list, ErrInvalidArgument
	}
	if rng == nil {
		rng = Default()
	}

	permute(list.Len(), func(i, j int) {
		e := list.At(i)
		list.Set(i, list.At(j))
		list.Set(j, e)
	}, rng)
	return list, nil
}

// Slice shuffles s in place and returns it. a nil slice is returned as is.
func Slice[S ~[]E, E any](s S, rng Source) S {
	if rng == nil {
		rng = Default()
	}

	permute(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	}, rng)
	return s
}

// permute draws j from [i, n) for every i but the last and swaps i with j.
// draws are used as returned; a source is trusted to stay in range.
func permute(n int, swap func(i, j int), rng Source) {
	for i := 0; i < n-1; i++ {
		if j := rng.IntRange(i, n); j != i {
			swap(i, j)
		}
	}
}

// isNil reports nil interfaces and typed nil references. nil slices are
// empty sequences, not absent ones.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
