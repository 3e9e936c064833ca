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

import "github.com/soyart/ali/manifest"

// validateMountpoints rejects an explicit "/" destination and duplicate
// destinations among the auxiliary mountpoint list. Rootfs's "/" is
// reserved and validated separately.
func validateMountpoints(mountpoints []manifest.Mountpoint) error {
	seen := make(map[string]struct{}, len(mountpoints))
	for _, mp := range mountpoints {
		if mp.Dest == "/" {
			return badManifest("mountpoint dest must not be /: device %s", mp.Device)
		}
		if _, ok := seen[mp.Dest]; ok {
			return badManifest("duplicate mountpoints %s", mp.Dest)
		}
		seen[mp.Dest] = struct{}{}
	}
	return nil
}
