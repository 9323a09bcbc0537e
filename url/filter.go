/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// inputFilter is the C4 input filter over a raw byte sequence:
// leading/trailing C0 controls and spaces are trimmed at construction,
// and bytes returns a compacted copy with TAB/LF/CR removed, which the
// scanner then reads. Offsets reported through the filter always refer
// to positions in the original, untrimmed byte sequence.
type inputFilter struct {
	raw        []byte
	start, end int // trimmed range [start,end) into raw
	trimmed    bool
	hadTabOrNL bool
}

func newInputFilter(raw []byte) *inputFilter {
	f := &inputFilter{raw: raw, start: 0, end: len(raw)}
	for f.start < f.end && isC0OrSpace(raw[f.start]) {
		f.start++
		f.trimmed = true
	}
	for f.end > f.start && isC0OrSpace(raw[f.end-1]) {
		f.end--
		f.trimmed = true
	}
	for i := f.start; i < f.end; i++ {
		if isASCIITabOrNewline(raw[i]) {
			f.hadTabOrNL = true
			break
		}
	}
	return f
}

// bytes returns the trimmed input with every TAB/LF/CR removed, plus a
// slice mapping each byte of the result back to its offset in raw.
func (f *inputFilter) bytes() (filtered []byte, origOffset []int) {
	filtered = make([]byte, 0, f.end-f.start)
	origOffset = make([]int, 0, f.end-f.start)
	for i := f.start; i < f.end; i++ {
		if isASCIITabOrNewline(f.raw[i]) {
			continue
		}
		filtered = append(filtered, f.raw[i])
		origOffset = append(origOffset, i)
	}
	return filtered, origOffset
}
