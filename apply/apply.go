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

package apply

import (
	"context"
	"fmt"

	"github.com/soyart/ali/hooks"
)

// Run executes every step of p in order using runner. In dryRun mode no
// step actually runs; Run only reports what it would have done.
// location is the chroot target hooks run against.
func Run(ctx context.Context, p *Plan, runner Runner, location string, dryRun bool, logf func(format string, v ...interface{})) error {
	for i, step := range p.Steps {
		if dryRun {
			logf("[dry-run] %d/%d: %s", i+1, len(p.Steps), step.Description)
			continue
		}

		logf("%d/%d: %s", i+1, len(p.Steps), step.Description)

		switch step.Kind {
		case StepHook:
			if _, err := hooks.Run(step.Cmd, location); err != nil {
				return fmt.Errorf("apply: step %d (%s): %w", i+1, step.Description, err)
			}
		case StepExec:
			if err := runner.Run(ctx, step.Cmd, step.Args); err != nil {
				return fmt.Errorf("apply: step %d (%s): %w", i+1, step.Description, err)
			}
		default:
			return fmt.Errorf("apply: step %d: unknown step kind %d", i+1, step.Kind)
		}
	}

	return nil
}
