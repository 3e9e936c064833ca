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

package apply

import (
	"fmt"
	"strings"

	"github.com/soyart/ali/device"
	"github.com/soyart/ali/manifest"
)

// Build translates a validated manifest and its topology into an ordered
// Plan. It assumes m has already passed validate.Validate against the
// snapshot that produced topo; it performs no validation of its own.
func Build(m *manifest.Manifest, topo device.PathSet, location string) *Plan {
	p := NewPlan()

	buildDisks(p, m.Disks)
	buildDeviceMappers(p, m.DeviceMappers)
	buildFilesystems(p, m)
	buildMounts(p, m, location)

	if len(m.Pacstraps) > 0 {
		p.add("pacstrap base packages", "pacstrap", append([]string{location}, m.Pacstraps...)...)
	}

	for _, cmd := range m.Chroot {
		buildCommand(p, "chroot: "+cmd, location, cmd, true)
	}
	for _, cmd := range m.PostInstall {
		buildCommand(p, "postinstall: "+cmd, location, cmd, false)
	}

	return p
}

func buildDisks(p *Plan, disks []manifest.Disk) {
	for _, d := range disks {
		table := "gpt"
		if d.Table == manifest.TableMBR {
			table = "msdos"
		}
		p.add(fmt.Sprintf("partition table on %s", d.Device), "parted", "-s", d.Device, "mklabel", table)

		for i, part := range d.Partitions {
			partPath := device.PartitionPath(d.Device, i+1)
			end := "100%"
			if part.Size != "" {
				end = part.Size
			}
			p.add(fmt.Sprintf("create partition %s", partPath), "parted", "-s", d.Device, "mkpart", part.Label, "0%", end)
		}
	}
}

func buildDeviceMappers(p *Plan, dms []manifest.DeviceMapper) {
	for _, dm := range dms {
		switch dm.Kind {
		case manifest.DmItemLuks:
			l := dm.Luks
			p.add(fmt.Sprintf("luksFormat %s", l.Device), "cryptsetup", "luksFormat", l.Device)
			p.add(fmt.Sprintf("luksOpen %s as %s", l.Device, l.Name), "cryptsetup", "open", l.Device, l.Name)

		case manifest.DmItemLvm:
			for _, pv := range dm.LvmPVs {
				p.add(fmt.Sprintf("pvcreate %s", pv), "pvcreate", pv)
			}
			for _, vg := range dm.LvmVGs {
				args := append([]string{vg.Name}, vg.PVs...)
				p.add(fmt.Sprintf("vgcreate %s", vg.Name), "vgcreate", args...)
			}
			for _, lv := range dm.LvmLVs {
				if lv.Size != "" {
					p.add(fmt.Sprintf("lvcreate %s/%s", lv.VG, lv.Name), "lvcreate", "-L", lv.Size, "-n", lv.Name, lv.VG)
				} else {
					p.add(fmt.Sprintf("lvcreate %s/%s (remaining space)", lv.VG, lv.Name), "lvcreate", "-l", "100%FREE", "-n", lv.Name, lv.VG)
				}
			}
		}
	}
}

func buildFilesystems(p *Plan, m *manifest.Manifest) {
	mkfs := func(device, fsType, opts string) {
		args := []string{}
		if opts != "" {
			args = append(args, strings.Fields(opts)...)
		}
		args = append(args, device)
		p.add(fmt.Sprintf("mkfs.%s %s", fsType, device), "mkfs."+fsType, args...)
	}

	mkfs(m.RootFs.Device, m.RootFs.FSType, m.RootFs.FSOpts)
	for _, fs := range m.Filesystems {
		mkfs(fs.Device, fs.FSType, fs.FSOpts)
	}
	for _, dev := range m.Swap {
		p.add(fmt.Sprintf("mkswap %s", dev), "mkswap", dev)
		p.add(fmt.Sprintf("swapon %s", dev), "swapon", dev)
	}
}

func buildMounts(p *Plan, m *manifest.Manifest, location string) {
	mountArgs := func(device, dest, opts string) []string {
		args := []string{}
		if opts != "" {
			args = append(args, "-o", opts)
		}
		return append(args, device, location+dest)
	}

	p.add(fmt.Sprintf("mount rootfs %s", m.RootFs.Device), "mount", mountArgs(m.RootFs.Device, "/", m.RootFs.MntOpts)...)
	for _, mp := range m.Mountpoints {
		p.add(fmt.Sprintf("mount %s at %s", mp.Device, mp.Dest), "mount", mountArgs(mp.Device, mp.Dest, mp.MntOpts)...)
	}
}

// buildCommand dispatches cmd either to a hook (when it starts with "@")
// or to arch-chroot/sh depending on chroot.
func buildCommand(p *Plan, description, location, cmd string, chroot bool) {
	trimmed := strings.TrimSpace(cmd)
	if strings.HasPrefix(trimmed, "@") {
		p.addHook(description, trimmed)
		return
	}
	if chroot {
		p.add(description, "arch-chroot", location, "sh", "-c", cmd)
		return
	}
	p.add(description, "sh", "-c", cmd)
}
