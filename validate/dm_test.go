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
	"testing"

	"github.com/soyart/ali/device"
	"github.com/soyart/ali/manifest"
)

// LUKS declared over an LV that itself fans out across two manifest-built
// PV routes must replace the LV leaf on every route, not leave it behind
// alongside the new LUKS-topped path.
func TestResolveLuksOverManifestLVConsumesEveryRoute(t *testing.T) {
	withFiles(t, "./mock_devs/sda2", "./mock_devs/sdb2")

	snap := emptySnapshot()
	valids, err := resolvePV("./mock_devs/sda2", nil, snap)
	if err != nil {
		t.Fatalf("resolvePV sda2: %v", err)
	}
	valids, err = resolvePV("./mock_devs/sdb2", valids, snap)
	if err != nil {
		t.Fatalf("resolvePV sdb2: %v", err)
	}
	vg := manifest.LvmVG{Name: "myvg", PVs: []string{"./mock_devs/sda2", "./mock_devs/sdb2"}}
	valids, err = resolveVG(vg, valids, snap)
	if err != nil {
		t.Fatalf("resolveVG: %v", err)
	}
	added, err := resolveLV(manifest.LvmLV{Name: "mylv", VG: "myvg", Size: "10G"}, valids, snap)
	if err != nil {
		t.Fatalf("resolveLV: %v", err)
	}
	valids = append(valids, added...)

	valids, err = resolveLuks(&manifest.Luks{Device: "/dev/myvg/mylv", Name: "cryptroot"}, valids, snap)
	if err != nil {
		t.Fatalf("resolveLuks: %v", err)
	}

	var leafLV, leafMapper int
	for _, p := range valids {
		switch p.Top().Path {
		case "/dev/myvg/mylv":
			leafLV++
		case "/dev/mapper/cryptroot":
			leafMapper++
		}
	}
	if leafLV != 0 {
		t.Errorf("expected the consumed lv leaf to be gone from every route, found %d remaining", leafLV)
	}
	if leafMapper != 2 {
		t.Errorf("expected 2 paths ending in cryptroot (one per pv route), got %d", leafMapper)
	}
}

// LUKS declared over a single manifest-built partition replaces that
// partition's leaf with the LUKS node rather than leaving both behind.
func TestResolveLuksOverManifestPartitionConsumesLeaf(t *testing.T) {
	withFiles(t, "./mock_devs/sda")

	snap := emptySnapshot()
	disks := []manifest.Disk{
		{
			Device: "./mock_devs/sda",
			Partitions: []manifest.Partition{
				{Label: "root", Size: "8G"},
			},
		},
	}
	valids, err := collectDisks(disks, snap)
	if err != nil {
		t.Fatalf("collectDisks: %v", err)
	}

	partPath := device.PartitionPath("./mock_devs/sda", 1)

	valids, err = resolveLuks(&manifest.Luks{Device: partPath, Name: "cryptroot"}, valids, snap)
	if err != nil {
		t.Fatalf("resolveLuks: %v", err)
	}

	var leafPart, leafMapper int
	for _, p := range valids {
		switch p.Top().Path {
		case partPath:
			leafPart++
		case "/dev/mapper/cryptroot":
			leafMapper++
		}
	}
	if leafPart != 0 {
		t.Errorf("expected the consumed partition leaf to be gone, found %d remaining", leafPart)
	}
	if leafMapper != 1 {
		t.Errorf("expected 1 path ending in cryptroot, got %d", leafMapper)
	}
}
