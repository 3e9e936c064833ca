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

package manifest

import (
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// pick returns the first value in raw found under any of keys, in the
// order given, so that e.g. "rootfs" is preferred over its alias "root"
// when a manifest author (mistakenly) supplies both.
func pick(raw map[interface{}]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// decodeInto re-marshals v (itself already decoded generically by
// yaml.v2) and unmarshals it into out, the shape every alias-aware
// UnmarshalYAML method in this package uses to populate one field at a
// time from whichever alias key was actually present.
func decodeInto(v interface{}, out interface{}) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func decodeField(raw map[interface{}]interface{}, out interface{}, keys ...string) error {
	v, ok := pick(raw, keys...)
	if !ok {
		return nil
	}
	return decodeInto(v, out)
}

// UnmarshalYAML implements the top-level manifest schema of spec §6.1,
// including every accepted key alias.
func (m *Manifest) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[interface{}]interface{}{}
	if err := unmarshal(&raw); err != nil {
		return err
	}

	if err := decodeField(raw, &m.Location, "location", "install_location"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Hostname, "hostname", "name", "host"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Timezone, "timezone", "tz"); err != nil {
		return err
	}

	rootRaw, ok := pick(raw, "rootfs", "root")
	if !ok {
		return fmt.Errorf("manifest: missing required rootfs")
	}
	if err := decodeInto(rootRaw, &m.RootFs); err != nil {
		return err
	}

	if err := decodeField(raw, &m.Disks, "disks"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.DeviceMappers, "device_mappers", "device-mappers", "dm", "dms"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Filesystems, "filesystems", "fs", "filesystem"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Mountpoints, "mountpoints", "mountpoint", "mnt"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Swap, "swap"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Pacstraps, "pacstraps", "pacstrap", "packages", "install", "installs"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.RootPasswd, "rootpasswd", "password", "passwd", "root-password", "root-passwd"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.Chroot, "chroot", "arch-chroot"); err != nil {
		return err
	}
	if err := decodeField(raw, &m.PostInstall, "postinstall", "post-install"); err != nil {
		return err
	}

	return nil
}

// UnmarshalYAML decodes a RootFs, resolving the fs_type aliases of §6.1.
func (r *RootFs) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[interface{}]interface{}{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if err := decodeField(raw, &r.Device, "device"); err != nil {
		return err
	}
	if err := decodeField(raw, &r.FSType, "fs_type", "fstype", "filesystem"); err != nil {
		return err
	}
	if err := decodeField(raw, &r.FSOpts, "fs_opts"); err != nil {
		return err
	}
	if err := decodeField(raw, &r.MntOpts, "mnt_opts"); err != nil {
		return err
	}
	return nil
}

// UnmarshalYAML decodes a Mountpoint, resolving the dest aliases of §6.1.
func (mp *Mountpoint) UnmarshalYAML(unmarshal func(interface{}) error) error {
	raw := map[interface{}]interface{}{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if err := decodeField(raw, &mp.Device, "device"); err != nil {
		return err
	}
	if err := decodeField(raw, &mp.Dest, "dest", "mount", "mount_point", "location"); err != nil {
		return err
	}
	if err := decodeField(raw, &mp.MntOpts, "mnt_opts"); err != nil {
		return err
	}
	return nil
}

// UnmarshalYAML decodes a Disk, resolving the partition-table aliases of
// §6.1 (gpt, or mbr/dos/mbr-dos).
func (d *Disk) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var shape struct {
		Device     string      `yaml:"device"`
		Table      string      `yaml:"table"`
		Partitions []Partition `yaml:"partitions"`
	}
	if err := unmarshal(&shape); err != nil {
		return err
	}
	d.Device = shape.Device
	d.Partitions = shape.Partitions

	switch strings.ToLower(strings.TrimSpace(shape.Table)) {
	case "", "gpt":
		d.Table = TableGPT
	case "mbr", "dos", "mbr-dos":
		d.Table = TableMBR
	default:
		return fmt.Errorf("disk %s: unknown partition table %q", d.Device, shape.Table)
	}
	return nil
}

// UnmarshalYAML decodes a DeviceMapper entry, dispatching on its "type"
// discriminator field per §6.1.
func (dm *DeviceMapper) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var disc struct {
		Type string `yaml:"type"`
	}
	if err := unmarshal(&disc); err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(disc.Type)) {
	case "luks":
		var l Luks
		if err := unmarshal(&l); err != nil {
			return err
		}
		dm.Kind = DmItemLuks
		dm.Luks = &l

	case "lvm":
		var lvm struct {
			PVs []string `yaml:"pvs"`
			VGs []LvmVG  `yaml:"vgs"`
			LVs []LvmLV  `yaml:"lvs"`
		}
		if err := unmarshal(&lvm); err != nil {
			return err
		}
		dm.Kind = DmItemLvm
		dm.LvmPVs = lvm.PVs
		dm.LvmVGs = lvm.VGs
		dm.LvmLVs = lvm.LVs

	default:
		return fmt.Errorf("device_mappers: unknown type %q", disc.Type)
	}

	return nil
}
