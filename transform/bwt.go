/*
Copyright 2026 File-Compressor Authors
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package transform implements the bwt profile's block front-end:
// Burrows-Wheeler Transform, move-to-front, and zero-run RLE.
package transform

import "sort"

// BWTResult is the forward transform's output: the last-column string L
// and the primary index of the unrotated row.
type BWTResult struct {
	L       []byte
	Primary int
}

// Forward computes the Burrows-Wheeler Transform of s by sorting every
// rotation of s lexicographically. n=0 is a defined edge case: L is
// empty and Primary is 0.
func Forward(s []byte) BWTResult {
	n := len(s)

	if n == 0 {
		return BWTResult{L: []byte{}, Primary: 0}
	}

	// After sorting, rotations[rank] is the start index of the rank-th
	// smallest rotation.
	rotations := make([]int, n)

	for i := range rotations {
		rotations[i] = i
	}

	doubled := make([]byte, 2*n)
	copy(doubled, s)
	copy(doubled[n:], s)

	sort.Slice(rotations, func(a, b int) bool {
		ra, rb := rotations[a], rotations[b]
		return string(doubled[ra:ra+n]) < string(doubled[rb:rb+n])
	})

	l := make([]byte, n)
	primary := 0

	for rank, start := range rotations {
		// L[rank] is the character preceding the rank-th sorted
		// rotation, i.e. the last character of that rotation.
		l[rank] = doubled[start+n-1]

		if start == 0 {
			primary = rank
		}
	}

	return BWTResult{L: l, Primary: primary}
}

// Inverse reconstructs the original block from its last column L and
// primary index, via the standard next-pointer reconstruction (a stable
// bucket sort on L rather than a full re-sort).
func Inverse(l []byte, primary int) []byte {
	n := len(l)

	if n == 0 {
		return []byte{}
	}

	var count [256]int

	for _, c := range l {
		count[c]++
	}

	var pos [256]int
	sum := 0

	for c := 0; c < 256; c++ {
		pos[c] = sum
		sum += count[c]
	}

	next := make([]int, n)

	for i, c := range l {
		next[pos[c]] = i
		pos[c]++
	}

	out := make([]byte, n)
	idx := next[primary]

	for i := 0; i < n; i++ {
		out[i] = l[idx]
		idx = next[idx]
	}

	return out
}
