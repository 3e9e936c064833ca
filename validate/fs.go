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

package validate

import (
	"github.com/soyart/ali/device"
	"github.com/soyart/ali/manifest"
	"github.com/soyart/ali/snapshot"
)

// buildFsReady computes the fs-ready set of §4.5 step 1: every remaining
// fs-ready snapshot device (an entry that fails the §3.3 filesystem-base
// rule is an error), plus every remaining LVM leaf and every topology
// leaf that passes that rule.
func buildFsReady(valids device.PathSet, snap *snapshot.Snapshot) (map[string]struct{}, error) {
	ready := map[string]struct{}{}

	for path, t := range snap.FsReadyDevs {
		if !device.IsFilesystemBase(t) {
			return nil, badManifest("device %s is not a filesystem base (is %s)", path, t)
		}
		ready[path] = struct{}{}
	}
	for _, routes := range snap.Lvms {
		for _, route := range routes {
			top := route.Top()
			if device.IsFilesystemBase(top.Type) {
				ready[top.Path] = struct{}{}
			}
		}
	}
	for _, p := range valids {
		top := p.Top()
		if device.IsFilesystemBase(top.Type) {
			ready[top.Path] = struct{}{}
		}
	}

	return ready, nil
}

// resolveFilesystems implements §4.5: it binds rootfs, auxiliary
// filesystems, mountpoints, and swap against the fs-ready set built from
// valids and the remaining snapshot, in that order, enforcing
// consume-at-most-once semantics throughout.
func resolveFilesystems(m *manifest.Manifest, valids device.PathSet, snap *snapshot.Snapshot) error {
	ready, err := buildFsReady(valids, snap)
	if err != nil {
		return err
	}

	if _, ok := ready[m.RootFs.Device]; !ok {
		return badManifest("rootfs device %s is not fs-ready", m.RootFs.Device)
	}
	delete(ready, m.RootFs.Device)

	fsDevs := map[string]struct{}{}
	for i, fs := range m.Filesystems {
		if _, ok := ready[fs.Device]; !ok {
			return badManifest("fs validation failed: device %s for fs #%d (%s) is not fs-ready", fs.Device, i+1, fs.FSType)
		}
		delete(ready, fs.Device)

		if _, ok := fsDevs[fs.Device]; ok {
			return badManifest("duplicate filesystem device %s", fs.Device)
		}
		fsDevs[fs.Device] = struct{}{}
	}

	for path := range snap.FsDevs {
		fsDevs[path] = struct{}{}
	}

	for _, mp := range m.Mountpoints {
		if _, ok := fsDevs[mp.Device]; !ok {
			return badManifest("mountpoint %s: device %s is not a known filesystem", mp.Dest, mp.Device)
		}
	}

	for _, dev := range m.Swap {
		if _, ok := ready[dev]; !ok {
			return badManifest("swap device %s is not fs-ready", dev)
		}
		delete(ready, dev)
	}

	return nil
}
