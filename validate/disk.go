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
	"os"

	"github.com/soyart/ali/device"
	"github.com/soyart/ali/device/size"
	"github.com/soyart/ali/manifest"
	"github.com/soyart/ali/snapshot"
)

// maxPartitions bounds the index range this collector checks for
// pre-existing collisions, mirroring the kernel's own partition-table
// ceiling.
const maxPartitions = 128

// fileExists is overridden in tests so the collector never touches the
// real filesystem.
var fileExists = func(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// collectDisks validates every manifest disk and its partitions in
// declaration order, appending one base path per disk and one extended
// path per partition to valids.
func collectDisks(disks []manifest.Disk, snap *snapshot.Snapshot) (device.PathSet, error) {
	var valids device.PathSet

	for _, d := range disks {
		if !fileExists(d.Device) {
			return nil, noSuchDevice(d.Device)
		}
		if _, ok := snap.FsDevs[d.Device]; ok {
			return nil, badManifest("disk %s is already used for a filesystem", d.Device)
		}

		for i := 1; i <= maxPartitions; i++ {
			p := device.PartitionPath(d.Device, i)
			if _, ok := snap.FsDevs[p]; ok {
				return nil, badManifest("disk %s: partition %s is already used for a filesystem", d.Device, p)
			}
		}

		base := device.Path{{Path: d.Device, Type: device.Disk()}}
		valids = append(valids, base)

		n := len(d.Partitions)
		for i, part := range d.Partitions {
			partPath := device.PartitionPath(d.Device, i+1)

			if n > 1 && i < n-1 && part.Size == "" {
				return nil, badManifest("unsized partition %s must be the last partition", partPath)
			}
			if part.Size != "" {
				if _, err := size.Parse(part.Size); err != nil {
					return nil, badManifest("bad partition size %s: %s", part.Size, err)
				}
			}
			if _, ok := snap.FsReadyDevs[partPath]; ok {
				return nil, badManifest("partition %s collides with an existing partition", partPath)
			}
			if _, ok := snap.FsDevs[partPath]; ok {
				return nil, badManifest("partition %s collides with an existing filesystem", partPath)
			}

			valids = append(valids, device.Path{
				{Path: d.Device, Type: device.Disk()},
				{Path: partPath, Type: device.Partition()},
			})
		}
	}

	return valids, nil
}
