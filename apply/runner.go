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

// Package apply is the collaborator that actually realizes a validated
// topology: partitioning, cryptsetup, LVM, mkfs, mount, pacstrap, and
// chrooted commands. The validator never calls into this package; the
// CLI wires them together.
package apply

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"syscall"

	"github.com/soyart/ali/util"
	"github.com/soyart/ali/util/errwrap"
)

// Runner executes one external command. ShellRunner is the real
// implementation; tests supply a fake.
type Runner interface {
	Run(ctx context.Context, name string, args []string) error
}

// RunnerOpts configures a ShellRunner the way mgmt's SimpleCmdOpts
// configures its command wrapper.
type RunnerOpts struct {
	Debug bool
	Logf  func(format string, v ...interface{})
}

// ShellRunner runs commands via os/exec, capturing combined output for
// diagnostics on failure.
type ShellRunner struct {
	Opts *RunnerOpts
}

func (r *ShellRunner) logf(format string, v ...interface{}) {
	if r.Opts == nil || r.Opts.Logf == nil {
		return
	}
	r.Opts.Logf(format, v...)
}

// Run executes name with args, detached from the caller's process group
// so a Ctrl-C to the parent doesn't also kill an in-flight mkfs.
func (r *ShellRunner) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if r.Opts != nil && r.Opts.Debug && r.Opts.Logf != nil {
		live := &util.LogWriter{Prefix: name + ": ", Logf: r.Opts.Logf}
		cmd.Stdout = io.MultiWriter(&out, live)
		cmd.Stderr = io.MultiWriter(&out, live)
	}

	r.logf("running: %s", strings.Join(cmd.Args, " "))
	if err := cmd.Start(); err != nil {
		return errwrap.Wrapf(err, "apply: could not start %s", name)
	}

	if err := cmd.Wait(); err != nil {
		if out.Len() > 0 {
			r.logf("cmd error:\n%s", out.String())
		}
		return errwrap.Wrapf(err, "apply: %s failed", strings.Join(cmd.Args, " "))
	}

	r.logf("ran successfully: %s", name)
	return nil
}
