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

	"github.com/soyart/ali/manifest"
)

// P4: at most the last partition of a disk may be unsized; every
// present size must parse.
func TestDiskSizingLastPartitionMayBeUnsized(t *testing.T) {
	withFiles(t, "./mock_devs/sda")

	disks := []manifest.Disk{
		{
			Device: "./mock_devs/sda",
			Partitions: []manifest.Partition{
				{Label: "EFI", Size: "512M"},
				{Label: "root"},
			},
		},
	}
	_, err := collectDisks(disks, emptySnapshot())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDiskSizingRejectsBadSize(t *testing.T) {
	withFiles(t, "./mock_devs/sda")

	disks := []manifest.Disk{
		{
			Device: "./mock_devs/sda",
			Partitions: []manifest.Partition{
				{Label: "root", Size: "5 gigabytes"},
			},
		},
	}
	_, err := collectDisks(disks, emptySnapshot())
	if err == nil {
		t.Fatal("expected error")
	}
}

// P4: the same rule holds per-VG for LVs, validated up front across the
// whole device_mappers list.
func TestLvSizingLastMayBeUnsized(t *testing.T) {
	dms := []manifest.DeviceMapper{
		{
			Kind: manifest.DmItemLvm,
			LvmLVs: []manifest.LvmLV{
				{Name: "data", VG: "myvg", Size: "10G"},
				{Name: "home", VG: "myvg"},
			},
		},
	}
	if err := validateLvSizing(dms); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLvSizingRejectsNonLastUnsized(t *testing.T) {
	dms := []manifest.DeviceMapper{
		{
			Kind: manifest.DmItemLvm,
			LvmLVs: []manifest.LvmLV{
				{Name: "data", VG: "myvg"},
				{Name: "home", VG: "myvg", Size: "10G"},
			},
		},
	}
	if err := validateLvSizing(dms); err == nil {
		t.Fatal("expected error")
	}
}

func TestLvSizingRejectsBadSizeString(t *testing.T) {
	dms := []manifest.DeviceMapper{
		{
			Kind:   manifest.DmItemLvm,
			LvmLVs: []manifest.LvmLV{{Name: "data", VG: "myvg", Size: "5 gigabytes"}},
		},
	}
	if err := validateLvSizing(dms); err == nil {
		t.Fatal("expected error")
	}
}
