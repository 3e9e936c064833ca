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

package hooks

import (
	"fmt"
	"os"
	"path/filepath"
)

const quicknetDhcpFilename = "20-quicknet.network"

// quicknet implements "@quicknet [dns <DNS_UPSTREAM>] <INTERFACE>": it
// drops a minimal systemd-networkd unit onto the target enabling DHCP
// (and an optional static DNS upstream) for INTERFACE.
//
//	@quicknet ens3                  -> DHCP on ens3
//	@quicknet dns 1.1.1.1 ens3       -> DHCP + DNS 1.1.1.1 on ens3
func quicknet(args []string, rootLocation string) (*ActionRecord, error) {
	var iface, dns string

	switch len(args) {
	case 1:
		iface = args[0]
	case 3:
		if args[0] != "dns" {
			return nil, fmt.Errorf("@quicknet: expected \"dns\" keyword, got %q", args[0])
		}
		dns = args[1]
		iface = args[2]
	default:
		return nil, fmt.Errorf("@quicknet: expected <INTERFACE> or \"dns\" <DNS_UPSTREAM> <INTERFACE>, got %d args", len(args))
	}

	unit := fmt.Sprintf("[Match]\nName=%s\n\n[Network]\nDHCP=yes\n", iface)
	if dns != "" {
		unit += fmt.Sprintf("DNS=%s\n", dns)
	}

	dir := filepath.Join(rootLocation, "etc/systemd/network")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("@quicknet: could not create %s: %w", dir, err)
	}

	path := filepath.Join(dir, quicknetDhcpFilename)
	if err := os.WriteFile(path, []byte(unit), 0o644); err != nil {
		return nil, fmt.Errorf("@quicknet: could not write %s: %w", path, err)
	}

	return &ActionRecord{
		Hook:   "@quicknet",
		Detail: fmt.Sprintf("wrote DHCP config for %s (dns=%q) to %s", iface, dns, path),
	}, nil
}
