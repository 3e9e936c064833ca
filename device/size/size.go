// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package size parses human-readable byte sizes like "500M", "8G", "10GB"
// and "8GiB" into a raw byte count. It is the only numeric validator in
// the system; every size check in the manifest routes through Parse.
package size

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// units maps a lowercased unit suffix to its multiplier. Both the SI
// (decimal) and IEC (binary) prefixes are accepted, each with an optional
// trailing "b".
var units = map[string]uint64{
	"k": 1000, "kb": 1000,
	"m": 1000 * 1000, "mb": 1000 * 1000,
	"g": 1000 * 1000 * 1000, "gb": 1000 * 1000 * 1000,
	"t": 1000 * 1000 * 1000 * 1000, "tb": 1000 * 1000 * 1000 * 1000,
	"p": 1000 * 1000 * 1000 * 1000 * 1000, "pb": 1000 * 1000 * 1000 * 1000 * 1000,
	"e": 1000 * 1000 * 1000 * 1000 * 1000 * 1000, "eb": 1000 * 1000 * 1000 * 1000 * 1000 * 1000,

	"ki": 1 << 10, "kib": 1 << 10,
	"mi": 1 << 20, "mib": 1 << 20,
	"gi": 1 << 30, "gib": 1 << 30,
	"ti": 1 << 40, "tib": 1 << 40,
	"pi": 1 << 50, "pib": 1 << 50,
	"ei": 1 << 60, "eib": 1 << 60,
}

// Error is returned by Parse when s does not name a valid size. Its
// string is meant to be embedded into a BadManifest diagnostic by the
// caller, e.g. fmt.Sprintf("bad lv size %s: %s", s, err).
type Error string

func (e Error) Error() string { return string(e) }

// Parse validates and converts a human-readable byte size into a raw
// byte count. The grammar is: an unsigned decimal integer (no sign, no
// decimal point, no exponent, leading zeros allowed), optional internal
// whitespace, then a case-insensitive unit: one of K, M, G, T, P, E (SI,
// optionally suffixed with B) or Ki, Mi, Gi, Ti, Pi, Ei (IEC, optionally
// suffixed with B).
func Parse(s string) (uint64, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, Error(fmt.Sprintf("empty size string"))
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, Error(fmt.Sprintf("no leading number in %q", orig))
	}

	numPart := s[:i]
	rest := strings.TrimLeft(s[i:], " \t")
	if rest == "" {
		return 0, Error(fmt.Sprintf("missing unit in %q", orig))
	}

	mult, ok := units[strings.ToLower(rest)]
	if !ok {
		return 0, Error(fmt.Sprintf("unrecognized unit %q in %q", rest, orig))
	}

	n, err := strconv.ParseUint(numPart, 10, 64)
	if err != nil {
		return 0, Error(fmt.Sprintf("bad number %q in %q: %v", numPart, orig, err))
	}

	hi, lo := bits.Mul64(n, mult)
	if hi != 0 {
		return 0, Error(fmt.Sprintf("size %q overflows a machine word", orig))
	}

	return lo, nil
}
