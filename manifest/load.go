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

package manifest

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/soyart/ali/util/errwrap"
)

// Load reads and decodes a manifest file from path. It does not validate
// the manifest beyond what the YAML schema itself enforces; semantic
// validation is package validate's job.
func Load(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errwrap.Wrapf(err, "manifest: could not read %s", path)
	}

	m := &Manifest{}
	if err := yaml.Unmarshal(b, m); err != nil {
		return nil, errwrap.Wrapf(err, "manifest: could not parse %s", path)
	}

	return m, nil
}
