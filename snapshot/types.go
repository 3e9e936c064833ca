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

// Package snapshot holds the probed view of system block devices that the
// validator resolves a manifest against: what's there already, what's
// ready to hold a filesystem, and what LVM topology already exists.
package snapshot

import "github.com/soyart/ali/device"

// Snapshot is the probed system state fed into the validator (spec §6.2).
// Entries are consumed (deleted) from the maps as the validator grafts
// them onto the manifest's own topology, so a Snapshot should be treated
// as owned by a single validation run once Ingest returns it.
type Snapshot struct {
	// FsDevs maps every device path that already carries a filesystem
	// to that filesystem's type (e.g. "ext4").
	FsDevs map[string]string

	// FsReadyDevs maps a device path to its Type for every device the
	// probe found that is an acceptable base for a new filesystem
	// (spec §3.3's IsFilesystemBase roles).
	FsReadyDevs map[string]device.Type

	// Lvms maps an existing LVM PV path to every Path that starts at that
	// PV and runs through its VG (and any LV on it), so the validator can
	// splice a manifest-declared VG or LV onto pre-existing PVs/VGs.
	Lvms map[string]device.PathSet
}

// Empty reports whether s carries no probed state at all. Overwrite mode
// does not consult it; validate.Validate takes overwrite as a parameter.
func (s *Snapshot) Empty() bool {
	return len(s.FsDevs) == 0 && len(s.FsReadyDevs) == 0 && len(s.Lvms) == 0
}
