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

// P6: no two mountpoints share a dest, and none uses the reserved "/".
func TestValidateMountpointsOK(t *testing.T) {
	mps := []manifest.Mountpoint{
		{Device: "/dev/a", Dest: "/data"},
		{Device: "/dev/b", Dest: "/home"},
	}
	if err := validateMountpoints(mps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateMountpointsDuplicateDest(t *testing.T) {
	mps := []manifest.Mountpoint{
		{Device: "/dev/a", Dest: "/data"},
		{Device: "/dev/b", Dest: "/data"},
	}
	err := validateMountpoints(mps)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "duplicate mountpoints /data" {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestValidateMountpointsRejectsRoot(t *testing.T) {
	mps := []manifest.Mountpoint{{Device: "/dev/a", Dest: "/"}}
	if err := validateMountpoints(mps); err == nil {
		t.Fatal("expected error for dest ==\"/\"")
	}
}

func TestValidateMountpointsEmpty(t *testing.T) {
	if err := validateMountpoints(nil); err != nil {
		t.Fatalf("unexpected error on empty list: %v", err)
	}
}
