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

// Package validate is the block-device validator and dependency
// resolver: given a manifest and a snapshot of the live system, it
// either proves the manifest realizable and returns the topology it
// would create, or returns the first diagnostic it hit. It is
// single-threaded, synchronous, and performs no mutation beyond checking
// whether a path names an existing file.
package validate

import (
	"github.com/soyart/ali/device"
	"github.com/soyart/ali/manifest"
	"github.com/soyart/ali/snapshot"
)

// Validate runs the full pipeline of §4 against m and snap, in fixed
// order: mountpoints, disks & partitions, device mappers, filesystems &
// swap. When overwrite is true, snap is treated as empty: the manifest
// must be fully self-contained and every device it touches is assumed to
// not yet carry system state.
func Validate(m *manifest.Manifest, snap *snapshot.Snapshot, overwrite bool) (device.PathSet, error) {
	if overwrite {
		snap = &snapshot.Snapshot{
			FsDevs:      map[string]string{},
			FsReadyDevs: map[string]device.Type{},
			Lvms:        map[string]device.PathSet{},
		}
	} else {
		snap = snapshot.Ingest(snap.FsDevs, snap.FsReadyDevs, snap.Lvms)
	}

	if err := validateMountpoints(m.Mountpoints); err != nil {
		return nil, err
	}

	valids, err := collectDisks(m.Disks, snap)
	if err != nil {
		return nil, err
	}

	valids, err = collectDeviceMappers(m.DeviceMappers, valids, snap)
	if err != nil {
		return nil, err
	}

	if err := resolveFilesystems(m, valids, snap); err != nil {
		return nil, err
	}

	return valids, nil
}
