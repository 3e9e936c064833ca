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

// P2: an LV hosted on a VG reachable via two manifest-declared PVs gets
// one topology path per reaching PV.
func TestResolveLVFanOutAcrossTwoManifestPVs(t *testing.T) {
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
	if len(added) != 2 {
		t.Fatalf("expected 2 fanned-out lv paths, got %d", len(added))
	}
	for _, p := range added {
		top := p.Top()
		if top.Path != "/dev/myvg/mylv" || !top.Type.Equal(device.LvmLV()) {
			t.Errorf("unexpected top node: %+v", top)
		}
	}
}

// Resolving an LV against an unknown VG fails.
func TestResolveLVUnknownVG(t *testing.T) {
	snap := emptySnapshot()
	_, err := resolveLV(manifest.LvmLV{Name: "mylv", VG: "ghost"}, nil, snap)
	if err == nil {
		t.Fatal("expected error")
	}
}

// Declaring the same LV target twice is a duplicate.
func TestResolveLVRejectsDuplicateTarget(t *testing.T) {
	valids := device.PathSet{
		{
			{Path: "/dev/sda2", Type: device.LvmPV()},
			{Path: "/dev/myvg", Type: device.LvmVG()},
			{Path: "/dev/myvg/mylv", Type: device.LvmLV()},
		},
	}
	snap := emptySnapshot()
	_, err := resolveLV(manifest.LvmLV{Name: "mylv", VG: "myvg"}, valids, snap)
	if err == nil {
		t.Fatal("expected error")
	}
}
