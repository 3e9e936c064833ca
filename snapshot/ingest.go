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

package snapshot

import "github.com/soyart/ali/device"

// Ingest defensively copies a probe's output into a fresh Snapshot. The
// copy matters because the validator mutates (consumes from) the maps it
// works against, and a caller's probe result must stay reusable across
// runs.
func Ingest(fsDevs map[string]string, fsReadyDevs map[string]device.Type, lvms map[string]device.PathSet) *Snapshot {
	s := &Snapshot{
		FsDevs:      make(map[string]string, len(fsDevs)),
		FsReadyDevs: make(map[string]device.Type, len(fsReadyDevs)),
		Lvms:        make(map[string]device.PathSet, len(lvms)),
	}

	for k, v := range fsDevs {
		s.FsDevs[k] = v
	}
	for k, v := range fsReadyDevs {
		s.FsReadyDevs[k] = v
	}
	for k, paths := range lvms {
		s.Lvms[k] = paths.Clone()
	}

	return s
}
