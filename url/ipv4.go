/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "bytes"

// endsInIPv4Number reports whether domain's last dot-separated label
// (ignoring one trailing empty label) looks like an IPv4 number, per
// 4.3: a domain ending in a
// trailing dot optionally followed by the last numeric label triggers an
// attempt at IPv4 parsing.
func endsInIPv4Number(domain []byte) bool {
	parts := bytes.Split(domain, []byte{'.'})
	if len(parts) == 0 {
		return false
	}
	last := parts[len(parts)-1]
	if len(last) == 0 {
		if len(parts) == 1 {
			return false
		}
		last = parts[len(parts)-2]
	}
	if len(last) == 0 {
		return false
	}
	allDigits := true
	for _, b := range last {
		if !isDigit(b) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return true
	}
	_, err := parseIPv4Piece(last)
	return err == nil
}

// parseIPv4Piece parses one dot-separated part of a lenient IPv4 literal
// (4.3.1), detecting its radix from its prefix.
func parseIPv4Piece(part []byte) (uint64, *IPv4Error) {
	if len(part) == 0 {
		return 0, &IPv4Error{Kind: IPv4EmptyInput}
	}
	radix := 10
	digits := part
	switch {
	case len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X'):
		radix = 16
		digits = part[2:]
	case len(part) > 1 && part[0] == '0':
		radix = 8
		digits = part
	}
	if radix == 16 && len(digits) == 0 {
		return 0, nil
	}
	var value uint64
	for i, b := range digits {
		d, ok := digitValue(b, radix)
		if !ok {
			if i == 0 {
				return 0, &IPv4Error{Kind: IPv4PieceBeginsWithInvalidCharacter}
			}
			return 0, &IPv4Error{Kind: IPv4InvalidCharacter}
		}
		value = value*uint64(radix) + uint64(d)
		if value > 0xFFFFFFFF {
			return 0, &IPv4Error{Kind: IPv4PieceOverflows}
		}
	}
	return value, nil
}

func digitValue(b byte, radix int) (int, bool) {
	switch radix {
	case 16:
		if !isHexDigit(b) {
			return 0, false
		}
		return int(hexValue(b)), true
	case 8:
		if b < '0' || b > '7' {
			return 0, false
		}
		return int(b - '0'), true
	default:
		if !isDigit(b) {
			return 0, false
		}
		return int(b - '0'), true
	}
}

// parseIPv4Lenient implements the full 4.3.1 algorithm: 1-4 dot-separated
// parts, each independently radix-detected, with width-dependent overflow
// bounds on the final part.
func parseIPv4Lenient(input []byte) (uint32, *IPv4Error) {
	if len(input) > 0 && input[len(input)-1] == '.' {
		input = input[:len(input)-1]
	}
	parts := bytes.Split(input, []byte{'.'})
	n := len(parts)
	if n > 4 {
		return 0, &IPv4Error{Kind: IPv4TooManyPieces}
	}
	values := make([]uint64, n)
	for i, part := range parts {
		v, err := parseIPv4Piece(part)
		if err != nil {
			return 0, err
		}
		if i < n-1 && v > 255 {
			return 0, &IPv4Error{Kind: IPv4PieceOverflows}
		}
		values[i] = v
	}
	last := values[n-1]
	maxLast := uint64(1)
	for i := 0; i < 5-n; i++ {
		maxLast *= 256
	}
	maxLast--
	if last > maxLast {
		return 0, &IPv4Error{Kind: IPv4PieceOverflows}
	}
	var addr uint64
	for i := 0; i < n-1; i++ {
		addr += values[i] << uint(8*(3-i))
	}
	addr += last
	return uint32(addr), nil
}

// parseIPv4Strict implements the IPv6-embedded IPv4 tail grammar
// (4.3.2): exactly 4 decimal parts, 0-255 each, no leading zeros except
// a literal "0", no radix prefixes.
func parseIPv4Strict(input []byte) (uint32, *IPv4Error) {
	parts := bytes.Split(input, []byte{'.'})
	if len(parts) != 4 {
		return 0, &IPv4Error{Kind: IPv4TooManyPieces}
	}
	var addr uint32
	for i, part := range parts {
		if len(part) == 0 {
			return 0, &IPv4Error{Kind: IPv4PieceBeginsWithInvalidCharacter}
		}
		if len(part) >= 2 && (part[0] == '0') && (part[1] == 'x' || part[1] == 'X') {
			return 0, &IPv4Error{Kind: IPv4UnsupportedRadix}
		}
		if len(part) > 1 && part[0] == '0' {
			return 0, &IPv4Error{Kind: IPv4UnsupportedRadix}
		}
		var value uint32
		for j, b := range part {
			if !isDigit(b) {
				if j == 0 {
					return 0, &IPv4Error{Kind: IPv4PieceBeginsWithInvalidCharacter}
				}
				return 0, &IPv4Error{Kind: IPv4InvalidCharacter}
			}
			value = value*10 + uint32(b-'0')
			if value > 255 {
				return 0, &IPv4Error{Kind: IPv4PieceOverflows}
			}
		}
		addr = addr<<8 | value
		_ = i
	}
	return addr, nil
}

// serializeIPv4 returns a's canonical dotted-decimal form.
func serializeIPv4(a uint32) []byte {
	buf := make([]byte, 0, 15)
	for shift := 24; shift >= 0; shift -= 8 {
		if shift != 24 {
			buf = append(buf, '.')
		}
		buf = appendUint(buf, uint64((a>>uint(shift))&0xff))
	}
	return buf
}

func appendUint(dst []byte, v uint64) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, tmp[i:]...)
}
