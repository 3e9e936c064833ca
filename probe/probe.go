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

// Package probe defines the contract between this module and whatever
// inspects the running system's block devices. Implementations are out
// of scope here (spec Non-goals); this package only describes the shape
// a real probe must produce so snapshot.Ingest can consume it.
package probe

import "github.com/soyart/ali/device"

// Prober inspects the live system and reports what snapshot.Ingest
// needs. A real implementation walks /sys/class/block, lsblk, or
// equivalent; tests may supply a fake.
type Prober interface {
	// FsDevices returns every device path that currently carries a
	// filesystem, mapped to that filesystem's type (e.g. "ext4").
	FsDevices() (map[string]string, error)

	// FsReadyDevices returns every block device path that is an
	// acceptable, currently-unused base for a new filesystem.
	FsReadyDevices() (map[string]device.Type, error)

	// LvmPaths returns, keyed by LVM PV path, every device.Path that
	// starts at that PV and runs through its VG (and any LV on it).
	LvmPaths() (map[string]device.PathSet, error)
}
