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
	"path/filepath"
	"strings"
)

// replaceToken implements "@replace-token <TOKEN> <VALUE> <TEMPLATE>
// [OUTPUT]": every occurrence of TOKEN in TEMPLATE is replaced with
// VALUE; the result is written to OUTPUT, or back to TEMPLATE if OUTPUT
// is omitted. Paths are resolved under rootLocation unless absolute.
func replaceToken(args []string, rootLocation string) (*ActionRecord, error) {
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("@replace-token: expected <TOKEN> <VALUE> <TEMPLATE> [OUTPUT], got %d args", len(args))
	}

	token, value, template := args[0], args[1], args[2]
	output := template
	if len(args) == 4 {
		output = args[3]
	}

	templatePath := resolveUnderRoot(rootLocation, template)
	outputPath := resolveUnderRoot(rootLocation, output)

	b, err := os.ReadFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("@replace-token: could not read template %s: %w", templatePath, err)
	}

	replaced := strings.ReplaceAll(string(b), token, value)
	if err := os.WriteFile(outputPath, []byte(replaced), 0o644); err != nil {
		return nil, fmt.Errorf("@replace-token: could not write %s: %w", outputPath, err)
	}

	return &ActionRecord{
		Hook:   "@replace-token",
		Detail: fmt.Sprintf("replaced %q with %q in %s -> %s", token, value, templatePath, outputPath),
	}, nil
}

// resolveUnderRoot joins path under root unless path is already absolute.
func resolveUnderRoot(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
