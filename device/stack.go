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

// CanHostLuks reports whether a LUKS mapping may be layered directly on
// top of a device of the given base type.
func CanHostLuks(base Type) bool {
	switch base.Kind {
	case KindDisk, KindPartition, KindUnknownBlock:
		return true
	case KindDm:
		return base.Dm == DmLvmLV
	default:
		return false
	}
}

// CanHostPV reports whether an LVM physical volume may be layered directly
// on top of a device of the given base type.
func CanHostPV(base Type) bool {
	switch base.Kind {
	case KindDisk, KindPartition, KindUnknownBlock:
		return true
	case KindDm:
		return base.Dm == DmLuks
	default:
		return false
	}
}

// CanHostVG reports whether an LVM volume group may be layered directly on
// top of a device of the given base type.
func CanHostVG(base Type) bool {
	return base.Kind == KindDm && base.Dm == DmLvmPV
}

// CanHostLV reports whether an LVM logical volume may be layered directly
// on top of a device of the given base type.
func CanHostLV(base Type) bool {
	return base.Kind == KindDm && base.Dm == DmLvmVG
}

// IsFilesystemBase reports whether a filesystem may be created directly on
// a device of the given type: the "fs-ready" predicate of the glossary.
func IsFilesystemBase(t Type) bool {
	switch t.Kind {
	case KindDisk, KindPartition, KindUnknownBlock:
		return true
	case KindDm:
		return t.Dm == DmLuks || t.Dm == DmLvmLV
	default:
		return false
	}
}
