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

package size

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"500M", 500 * 1000 * 1000},
		{"8G", 8 * 1000 * 1000 * 1000},
		{"10GB", 10 * 1000 * 1000 * 1000},
		{"8GiB", 8 << 30},
		{"1k", 1000},
		{"1Ki", 1024},
		{"01 Ki", 1024},
		{"1 kib", 1024},
		{"1KIB", 1024},
		{"0G", 0},
		{"0", 0}, // caught below: "0" alone has no unit and must fail
	}
	for _, tt := range tests[:len(tests)-1] {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		"M",
		"-1G",
		"5.6G",
		"5.6 gigabytes",
		"1Z",
		"1ZB",
		"1 gigabytes",
		"0",
		"G5",
	}
	for _, in := range tests {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got none", in)
		}
	}
}

func TestParseOverflow(t *testing.T) {
	// The count (about 10^20) is already above 2^64-1 before the Ei
	// multiplier is applied.
	if _, err := Parse("99999999999999999999Ei"); err == nil {
		t.Errorf("Parse: expected overflow or numeric-parse error, got none")
	}
}
