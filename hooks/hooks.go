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

// Package hooks implements the small set of @keyword commands a
// manifest's chroot/postinstall command lists may invoke in place of a
// literal shell command: token replacement in a template, uncommenting a
// line in a file, quick DHCP network setup, and downloading a file.
package hooks

import (
	"fmt"

	"github.com/soyart/ali/util/errwrap"
)

// ActionRecord describes what a hook actually did, for logging and for
// the applier's run report.
type ActionRecord struct {
	Hook   string
	Detail string
}

// Func is the shape every hook implementation has: given the tokenized
// arguments that followed its @keyword and the install root, it performs
// its effect and reports what happened.
type Func func(args []string, rootLocation string) (*ActionRecord, error)

var registry = map[string]Func{
	"@replace-token": replaceToken,
	"@uncomment":     uncomment,
	"@quicknet":      quicknet,
	"@download":      download,
}

// Run tokenizes cmd (honoring quotes, per shell-style lexing) and
// dispatches it to the hook named by its first token, which must begin
// with "@". rootLocation is substituted for chrooted invocations by the
// caller before Run is ever called.
func Run(cmd string, rootLocation string) (*ActionRecord, error) {
	tokens, err := tokenize(cmd)
	if err != nil {
		return nil, errwrap.Wrapf(err, "hooks: could not tokenize %q", cmd)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("hooks: empty command")
	}

	keyword := tokens[0]
	fn, ok := registry[keyword]
	if !ok {
		return nil, fmt.Errorf("hooks: unknown hook %s", keyword)
	}

	return fn(tokens[1:], rootLocation)
}
