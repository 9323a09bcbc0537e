/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// parseIPv6 parses the interior of a bracketed IPv6 literal (4.3.2) into
// eight 16-bit groups.
func parseIPv6(input []byte) ([8]uint16, *IPv6Error) {
	var addr [8]uint16
	if len(input) == 0 {
		return addr, &IPv6Error{Kind: IPv6EmptyInput}
	}

	pieceIndex := 0
	pointer := 0
	compress := -1

	if input[0] == ':' {
		if len(input) < 2 || input[1] != ':' {
			return addr, &IPv6Error{Kind: IPv6UnexpectedLeadingColon}
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for pointer < len(input) {
		if pieceIndex == 8 {
			return addr, &IPv6Error{Kind: IPv6TooManyPieces}
		}
		if input[pointer] == ':' {
			if compress != -1 {
				return addr, &IPv6Error{Kind: IPv6MultipleCompressedPieces}
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value := 0
		length := 0
		for length < 4 && pointer+length < len(input) && isHexDigit(input[pointer+length]) {
			value = value*16 + int(hexValue(input[pointer+length]))
			length++
		}
		pointer += length

		if pointer < len(input) && input[pointer] == '.' {
			if length == 0 {
				return addr, &IPv6Error{Kind: IPv6UnexpectedCharacter}
			}
			pointer -= length
			if pieceIndex > 6 {
				return addr, &IPv6Error{Kind: IPv6InvalidPositionForIPv4Address}
			}
			tail, ipErr := parseIPv4Strict(input[pointer:])
			if ipErr != nil {
				return addr, &IPv6Error{Kind: IPv6InvalidIPv4Address, Cause: ipErr}
			}
			addr[pieceIndex] = uint16(tail >> 16)
			addr[pieceIndex+1] = uint16(tail & 0xffff)
			pieceIndex += 2
			pointer = len(input)
			break
		}

		if pointer < len(input) {
			if input[pointer] != ':' {
				return addr, &IPv6Error{Kind: IPv6UnexpectedCharacter}
			}
			pointer++
			if pointer >= len(input) {
				return addr, &IPv6Error{Kind: IPv6UnexpectedTrailingColon}
			}
		}
		addr[pieceIndex] = uint16(value)
		pieceIndex++
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		dst := 7
		for dst != 0 && swaps > 0 {
			addr[dst], addr[compress+swaps-1] = addr[compress+swaps-1], addr[dst]
			dst--
			swaps--
		}
	} else if pieceIndex != 8 {
		return addr, &IPv6Error{Kind: IPv6NotEnoughPieces}
	}

	return addr, nil
}

// longestZeroRun finds the leftmost longest run of length >= 2 of
// consecutive zero groups, returning (start, length), or (-1, 0) if
// none qualifies.
func longestZeroRun(groups [8]uint16) (start, length int) {
	bestStart, bestLen := -1, 0
	i := 0
	for i < 8 {
		if groups[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && groups[j] == 0 {
			j++
		}
		if run := j - i; run > bestLen {
			bestStart, bestLen = i, run
		}
		i = j
	}
	if bestLen < 2 {
		return -1, 0
	}
	return bestStart, bestLen
}

// appendIPv6 appends groups' canonical serialization (4.3.3) to dst:
// lowercase hex without leading zeros, the longest >=2 zero run
// (leftmost on ties) compressed to "::". IPv4-in-IPv6 dotted-decimal
// tails are never emitted, even for ::ffff:a.b.c.d-style addresses.
func appendIPv6(dst []byte, groups [8]uint16) []byte {
	start, _ := longestZeroRun(groups)
	ignore0 := false
	for i := 0; i < 8; i++ {
		if ignore0 && groups[i] == 0 {
			continue
		}
		ignore0 = false
		if i == start {
			if i == 0 {
				dst = append(dst, ':', ':')
			} else {
				dst = append(dst, ':')
			}
			ignore0 = true
			continue
		}
		dst = appendHexGroup(dst, groups[i])
		if i != 7 {
			dst = append(dst, ':')
		}
	}
	return dst
}

func appendHexGroup(dst []byte, v uint16) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	var tmp [4]byte
	n := 0
	for v > 0 {
		tmp[n] = lowerHexDigit(byte(v & 0xf))
		v >>= 4
		n++
	}
	for n > 0 {
		n--
		dst = append(dst, tmp[n])
	}
	return dst
}

func lowerHexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + v - 10
}
