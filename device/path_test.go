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

package device

import "testing"

func TestPartitionPath(t *testing.T) {
	tests := []struct {
		disk string
		n    int
		want string
	}{
		{"/dev/sda", 1, "/dev/sda1"},
		{"/dev/sda", 2, "/dev/sda2"},
		{"/dev/nvme0n1", 1, "/dev/nvme0n1p1"},
		{"/dev/mmcblk0", 3, "/dev/mmcblk0p3"},
	}
	for _, tt := range tests {
		if got := PartitionPath(tt.disk, tt.n); got != tt.want {
			t.Errorf("PartitionPath(%q, %d) = %q, want %q", tt.disk, tt.n, got, tt.want)
		}
	}
}

func TestMapperVGLVPaths(t *testing.T) {
	if got := MapperPath("cryptroot"); got != "/dev/mapper/cryptroot" {
		t.Errorf("MapperPath = %q", got)
	}
	if got := VGPath("myvg"); got != "/dev/myvg" {
		t.Errorf("VGPath = %q", got)
	}
	if got := LVPath("myvg", "mylv"); got != "/dev/myvg/mylv" {
		t.Errorf("LVPath = %q", got)
	}
}

func TestPathCloneIndependence(t *testing.T) {
	base := Path{{Path: "/dev/sda", Type: Disk()}}
	a := base.Clone()
	b := base.Clone()

	a = append(a, Node{Path: "/dev/sda1", Type: Partition()})
	b = append(b, Node{Path: "/dev/mapper/x", Type: Luks()})

	if a.Top().Path != "/dev/sda1" {
		t.Errorf("clone a mutated: got top %q", a.Top().Path)
	}
	if b.Top().Path != "/dev/mapper/x" {
		t.Errorf("clone b mutated: got top %q", b.Top().Path)
	}
	if len(base) != 1 {
		t.Errorf("base path was mutated by clone append, len = %d", len(base))
	}
}

// TestStackingClosure exercises P1 (spec.md §8.1): for every permitted
// (role, base) pair, the predicate accepts; every non-listed base is
// rejected.
func TestStackingClosure(t *testing.T) {
	allBases := []Type{Disk(), Partition(), UnknownBlock(), Luks(), LvmPV(), LvmVG(), LvmLV(), Filesystem("btrfs")}

	permitted := map[string]map[Type]bool{
		"luks": {Disk(): true, Partition(): true, UnknownBlock(): true, LvmLV(): true},
		"pv":   {Disk(): true, Partition(): true, UnknownBlock(): true, Luks(): true},
		"vg":   {LvmPV(): true},
		"lv":   {LvmVG(): true},
		"fs":   {Disk(): true, Partition(): true, UnknownBlock(): true, Luks(): true, LvmLV(): true},
	}

	checks := map[string]func(Type) bool{
		"luks": CanHostLuks,
		"pv":   CanHostPV,
		"vg":   CanHostVG,
		"lv":   CanHostLV,
		"fs":   IsFilesystemBase,
	}

	for role, fn := range checks {
		for _, base := range allBases {
			want := permitted[role][base]
			if got := fn(base); got != want {
				t.Errorf("%s host check on base %v = %v, want %v", role, base, got, want)
			}
		}
	}
}
