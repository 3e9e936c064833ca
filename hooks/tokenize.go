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

import shellwords "github.com/mattn/go-shellwords"

// tokenize splits a hook command line the way a shell would, honoring
// single and double quotes, so a quoted argument may contain whitespace.
func tokenize(cmd string) ([]string, error) {
	return shellwords.Parse(cmd)
}
