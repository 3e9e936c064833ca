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

package hooks

import (
	"fmt"
	"os"
	"strings"
)

const defaultCommentMarker = "#"

// uncomment implements "@uncomment <PATTERN> [marker <MARKER>] <FILE>":
// it strips a leading comment marker from every line in FILE that
// contains PATTERN after the marker. Without "all" in the original
// command this system always uncomments every match; callers wanting
// "first match only" should target a file where PATTERN is unique.
func uncomment(args []string, rootLocation string) (*ActionRecord, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("@uncomment: expected <PATTERN> [marker <MARKER>] <FILE>, got %d args", len(args))
	}

	pattern := args[0]
	marker := defaultCommentMarker
	rest := args[1:]

	if len(rest) >= 3 && rest[0] == "marker" {
		marker = rest[1]
		rest = rest[2:]
	}
	if len(rest) != 1 {
		return nil, fmt.Errorf("@uncomment: expected exactly one trailing FILE argument, got %d", len(rest))
	}

	path := resolveUnderRoot(rootLocation, rest[0])
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("@uncomment: could not read %s: %w", path, err)
	}

	lines := strings.Split(string(b), "\n")
	uncommented := 0
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if !strings.HasPrefix(trimmed, marker) {
			continue
		}
		body := strings.TrimPrefix(trimmed, marker)
		if !strings.Contains(body, pattern) {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + strings.TrimLeft(body, " \t")
		uncommented++
	}

	if uncommented == 0 {
		return nil, fmt.Errorf("@uncomment: no commented line matching %q found in %s", pattern, path)
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return nil, fmt.Errorf("@uncomment: could not write %s: %w", path, err)
	}

	return &ActionRecord{
		Hook:   "@uncomment",
		Detail: fmt.Sprintf("uncommented %d line(s) matching %q in %s", uncommented, pattern, path),
	}, nil
}
