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

package main

import (
	"os"

	"github.com/soyart/ali/cli"
	"github.com/soyart/ali/device"
)

// emptySystemProber is the stand-in Prober this binary ships with. Real
// block-device inspection is out of scope (spec Non-goals); it always
// reports an empty system, so every run behaves as if --overwrite were
// given unless a future build links in a real implementation.
type emptySystemProber struct{}

func (emptySystemProber) FsDevices() (map[string]string, error) { return map[string]string{}, nil }

func (emptySystemProber) FsReadyDevices() (map[string]device.Type, error) {
	return map[string]device.Type{}, nil
}

func (emptySystemProber) LvmPaths() (map[string]device.PathSet, error) {
	return map[string]device.PathSet{}, nil
}

func main() {
	os.Exit(cli.Run(emptySystemProber{}))
}
