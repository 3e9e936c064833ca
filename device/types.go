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

// Package device holds the tagged block-device variants, the ordered
// device-path representation, and the stacking predicates that say what
// role may legally sit on top of what.
package device

import "fmt"

// Kind is the coarse tag of a Type: what kind of thing a device node is.
type Kind int

const (
	// KindDisk is a whole disk, e.g. /dev/sda.
	KindDisk Kind = iota
	// KindPartition is a numbered partition on a disk.
	KindPartition
	// KindUnknownBlock is an opaque, filesystem-capable block device whose
	// provenance we don't track (e.g. a bare device handed to us by the
	// manifest that isn't itself a manifest-declared disk/partition).
	KindUnknownBlock
	// KindDm is a device-mapper node; see the Dm field for which one.
	KindDm
	// KindFilesystem is a filesystem sitting on some base; see FS for its
	// type name (e.g. "btrfs", "ext4", "swap").
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindDisk:
		return "disk"
	case KindPartition:
		return "partition"
	case KindUnknownBlock:
		return "unknown-block"
	case KindDm:
		return "dm"
	case KindFilesystem:
		return "filesystem"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// DmKind distinguishes the four device-mapper roles this system knows how
// to stack.
type DmKind int

const (
	// DmLuks is a LUKS-encrypted mapping.
	DmLuks DmKind = iota
	// DmLvmPV is an LVM physical volume.
	DmLvmPV
	// DmLvmVG is an LVM volume group.
	DmLvmVG
	// DmLvmLV is an LVM logical volume.
	DmLvmLV
)

func (k DmKind) String() string {
	switch k {
	case DmLuks:
		return "luks"
	case DmLvmPV:
		return "lvm-pv"
	case DmLvmVG:
		return "lvm-vg"
	case DmLvmLV:
		return "lvm-lv"
	default:
		return fmt.Sprintf("dm-kind(%d)", int(k))
	}
}

// Type is the tagged device-type variant of spec §3.1. The zero value is
// the Disk type; construct Types through the helper functions below.
type Type struct {
	Kind Kind
	Dm   DmKind // meaningful only when Kind == KindDm
	FS   string // meaningful only when Kind == KindFilesystem
}

// Disk returns the Type for a whole disk.
func Disk() Type { return Type{Kind: KindDisk} }

// Partition returns the Type for a disk partition.
func Partition() Type { return Type{Kind: KindPartition} }

// UnknownBlock returns the Type for an opaque filesystem-capable block
// device.
func UnknownBlock() Type { return Type{Kind: KindUnknownBlock} }

// Luks returns the Type for a LUKS mapping.
func Luks() Type { return Type{Kind: KindDm, Dm: DmLuks} }

// LvmPV returns the Type for an LVM physical volume.
func LvmPV() Type { return Type{Kind: KindDm, Dm: DmLvmPV} }

// LvmVG returns the Type for an LVM volume group.
func LvmVG() Type { return Type{Kind: KindDm, Dm: DmLvmVG} }

// LvmLV returns the Type for an LVM logical volume.
func LvmLV() Type { return Type{Kind: KindDm, Dm: DmLvmLV} }

// Filesystem returns the Type for a filesystem of the given kind (e.g.
// "btrfs", "ext4", "swap").
func Filesystem(fsType string) Type { return Type{Kind: KindFilesystem, FS: fsType} }

// Equal reports whether two Types name the same role.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindDm:
		return t.Dm == other.Dm
	case KindFilesystem:
		return t.FS == other.FS
	default:
		return true
	}
}

// String renders a Type the way diagnostics quote it, e.g. "partition",
// "dm luks", "filesystem(btrfs)".
func (t Type) String() string {
	switch t.Kind {
	case KindDm:
		return "dm " + t.Dm.String()
	case KindFilesystem:
		return fmt.Sprintf("filesystem(%s)", t.FS)
	default:
		return t.Kind.String()
	}
}
