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

// Package cli is the command-line surface of §6.4: subcommands validate
// and apply, sharing a global -f/--file manifest flag and a -n/--dry-run
// flag, with apply additionally accepting --no-validate and --overwrite.
package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/soyart/ali/apply"
	cliutil "github.com/soyart/ali/cli/util"
	"github.com/soyart/ali/manifest"
	"github.com/soyart/ali/probe"
	"github.com/soyart/ali/snapshot"
	"github.com/soyart/ali/validate"
)

// Version is set by the build, mirroring the teacher's convention of a
// linker-injected version string.
var Version = "(unknown)"

type validateCmd struct{}

type applyCmd struct {
	NoValidate bool `arg:"--no-validate" help:"apply even if manifest validation fails"`
	Overwrite  bool `arg:"--overwrite" help:"treat the system as empty; destroy whatever is there"`
}

type args struct {
	File     string       `arg:"-f,--file" default:"./manifest.yaml" help:"path to the installation manifest"`
	DryRun   bool         `arg:"-n,--dry-run" help:"print the plan without running it"`
	Debug    bool         `arg:"--debug" help:"enable verbose logging"`
	Validate *validateCmd `arg:"subcommand:validate" help:"validate a manifest against the running system"`
	Apply    *applyCmd    `arg:"subcommand:apply" help:"validate and apply a manifest (with --no-validate, a validation failure is only a warning)"`
}

func (args) Version() string {
	return Version
}

// Program is the name reported in the startup banner.
const Program = "ali"

// Run parses os.Args, dispatches to the chosen subcommand, and returns
// the process exit code.
func Run(prober probe.Prober) int {
	var parsed args
	p := arg.MustParse(&parsed)

	data := cliutil.Data{
		Program: Program,
		Version: Version,
		Flags:   cliutil.Flags{Debug: parsed.Debug},
		Args:    os.Args,
	}
	cliutil.Hello(cliutil.SafeProgram(data.Program), data.Version, data.Flags)

	switch {
	case parsed.Validate != nil:
		log.Printf("main: dispatching subcommand: %s", cliutil.LookupSubcommand(&parsed, parsed.Validate))
		return runValidate(parsed, prober)
	case parsed.Apply != nil:
		log.Printf("main: dispatching subcommand: %s", cliutil.LookupSubcommand(&parsed, parsed.Apply))
		return runApply(parsed, prober)
	default:
		p.Fail("a subcommand is required: validate or apply")
		return 2
	}
}

func loadAndSnapshot(file string, prober probe.Prober) (*manifest.Manifest, *snapshot.Snapshot, error) {
	m, err := manifest.Load(file)
	if err != nil {
		return nil, nil, cliutil.CliParseError(err)
	}

	fsDevs, err := prober.FsDevices()
	if err != nil {
		return nil, nil, fmt.Errorf("probe fs devices: %w", err)
	}
	fsReady, err := prober.FsReadyDevices()
	if err != nil {
		return nil, nil, fmt.Errorf("probe fs-ready devices: %w", err)
	}
	lvms, err := prober.LvmPaths()
	if err != nil {
		return nil, nil, fmt.Errorf("probe lvm topology: %w", err)
	}

	return m, snapshot.Ingest(fsDevs, fsReady, lvms), nil
}

func runValidate(a args, prober probe.Prober) int {
	m, snap, err := loadAndSnapshot(a.File, prober)
	if err != nil {
		log.Printf("validate: %v", err)
		return 1
	}

	if _, err := validate.Validate(m, snap, false); err != nil {
		log.Printf("validate: %v", err)
		return 1
	}

	fmt.Println("manifest is valid")
	return 0
}

func runApply(a args, prober probe.Prober) int {
	m, snap, err := loadAndSnapshot(a.File, prober)
	if err != nil {
		log.Printf("apply: %v", err)
		return 1
	}

	// Validation is also how the disk/LVM topology apply builds from is
	// derived, so it always runs; --no-validate only demotes a failure
	// from fatal to a warning.
	result, err := validate.Validate(m, snap, a.Apply.Overwrite)
	if err != nil {
		if !a.Apply.NoValidate {
			log.Printf("apply: validation failed: %v", err)
			return 1
		}
		log.Printf("apply: validation failed, proceeding anyway (--no-validate): %v", err)
	}

	location := deriveLocation(m)
	plan := apply.Build(m, result, location)

	runner := &apply.ShellRunner{Opts: &apply.RunnerOpts{Debug: a.Debug, Logf: log.Printf}}
	if err := apply.Run(context.Background(), plan, runner, location, a.DryRun, log.Printf); err != nil {
		log.Printf("apply: %v", err)
		return 1
	}

	return 0
}

func deriveLocation(m *manifest.Manifest) string {
	if loc := os.Getenv("ALI_LOC"); loc != "" {
		return loc
	}
	if m.Location != "" {
		return m.Location
	}
	return "/mnt"
}
