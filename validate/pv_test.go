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

// P3: a PV already committed to an existing VG in the snapshot cannot be
// claimed by a different VG in the manifest.
func TestResolveVGRejectsPVAlreadyInOtherVG(t *testing.T) {
	withFiles(t, "./mock_devs/sda2")

	snap := emptySnapshot()
	snap.Lvms["./mock_devs/sda2"] = device.PathSet{
		{
			{Path: "./mock_devs/sda2", Type: device.LvmPV()},
			{Path: "/dev/othervg", Type: device.LvmVG()},
		},
	}

	_, err := resolveVG(manifest.LvmVG{Name: "myvg", PVs: []string{"./mock_devs/sda2"}}, nil, snap)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*BadManifestError); !ok {
		t.Fatalf("expected BadManifestError, got %T", err)
	}
}

// P3: a fresh PV is accepted and appended with an LvmVG node.
func TestResolvePVThenVG(t *testing.T) {
	withFiles(t, "./mock_devs/sda2")

	snap := emptySnapshot()
	valids, err := resolvePV("./mock_devs/sda2", nil, snap)
	if err != nil {
		t.Fatalf("unexpected error resolving pv: %v", err)
	}

	valids, err = resolveVG(manifest.LvmVG{Name: "myvg", PVs: []string{"./mock_devs/sda2"}}, valids, snap)
	if err != nil {
		t.Fatalf("unexpected error resolving vg: %v", err)
	}

	top := valids[0].Top()
	if top.Path != "/dev/myvg" || !top.Type.Equal(device.LvmVG()) {
		t.Errorf("unexpected top node: %+v", top)
	}
}
