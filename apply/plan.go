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

import "github.com/google/uuid"

// StepKind tags what a Step does, so Run can special-case hooks (which
// run through package hooks rather than exec.Command).
type StepKind int

const (
	// StepExec runs Cmd with Args as an external command.
	StepExec StepKind = iota
	// StepHook runs Cmd (the full "@keyword ..." line) through hooks.Run.
	StepHook
)

// Step is one unit of work in a Plan.
type Step struct {
	Kind        StepKind
	Description string
	Cmd         string
	Args        []string
}

// Plan is the ordered sequence of steps that realizes a validated
// topology and manifest. Every Plan is identified by a fresh ID so a run
// can be referenced in logs independent of wall-clock time.
type Plan struct {
	ID    uuid.UUID
	Steps []Step
}

// NewPlan returns an empty, freshly identified Plan.
func NewPlan() *Plan {
	return &Plan{ID: uuid.New()}
}

func (p *Plan) add(description, cmd string, args ...string) {
	p.Steps = append(p.Steps, Step{Kind: StepExec, Description: description, Cmd: cmd, Args: args})
}

func (p *Plan) addHook(description, cmd string) {
	p.Steps = append(p.Steps, Step{Kind: StepHook, Description: description, Cmd: cmd})
}
