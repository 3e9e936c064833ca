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
	"github.com/soyart/ali/device"
	"github.com/soyart/ali/device/size"
	"github.com/soyart/ali/manifest"
	"github.com/soyart/ali/snapshot"
)

// collectDeviceMappers walks manifest.device_mappers in declaration
// order, resolving LUKS, PV, VG, and LV entries (strictly PV -> VG -> LV
// within one LVM entry) against valids and the snapshot.
func collectDeviceMappers(dms []manifest.DeviceMapper, valids device.PathSet, snap *snapshot.Snapshot) (device.PathSet, error) {
	if err := validateLvSizing(dms); err != nil {
		return nil, err
	}

	for _, dm := range dms {
		switch dm.Kind {
		case manifest.DmItemLuks:
			var err error
			valids, err = resolveLuks(dm.Luks, valids, snap)
			if err != nil {
				return nil, err
			}

		case manifest.DmItemLvm:
			for _, pv := range dm.LvmPVs {
				var err error
				valids, err = resolvePV(pv, valids, snap)
				if err != nil {
					return nil, err
				}
			}
			for _, vg := range dm.LvmVGs {
				var err error
				valids, err = resolveVG(vg, valids, snap)
				if err != nil {
					return nil, err
				}
			}
			for _, lv := range dm.LvmLVs {
				added, err := resolveLV(lv, valids, snap)
				if err != nil {
					return nil, err
				}
				valids = append(valids, added...)
			}

		default:
			return nil, bug("device_mappers: unhandled kind %d", dm.Kind)
		}
	}

	return valids, nil
}

// validateLvSizing enforces §4.4's LV-sizing-per-VG rule across the whole
// device_mappers list before any resolution runs: bucket LVs by VG name,
// and within a bucket of 2+ entries only the last may be unsized.
func validateLvSizing(dms []manifest.DeviceMapper) error {
	buckets := map[string][]manifest.LvmLV{}
	var order []string

	for _, dm := range dms {
		if dm.Kind != manifest.DmItemLvm {
			continue
		}
		for _, lv := range dm.LvmLVs {
			if _, ok := buckets[lv.VG]; !ok {
				order = append(order, lv.VG)
			}
			buckets[lv.VG] = append(buckets[lv.VG], lv)
		}
	}

	for _, vg := range order {
		lvs := buckets[vg]
		for i, lv := range lvs {
			if lv.Size != "" {
				if _, err := size.Parse(lv.Size); err != nil {
					return badManifest("bad lv size %s: %s", lv.Size, err)
				}
				continue
			}
			if len(lvs) > 1 && i < len(lvs)-1 {
				return badManifest("unsized lv %s in vg %s must be the last lv", lv.Name, vg)
			}
		}
	}

	return nil
}

// findTopmost returns the index of the first path in ps whose top-most
// node is at path, or -1.
func findTopmost(ps device.PathSet, path string) int {
	for i, p := range ps {
		if p.Top().Path == path {
			return i
		}
	}
	return -1
}

// removeAt drops the element at idx from ps, preserving order.
func removeAt(ps device.PathSet, idx int) device.PathSet {
	out := make(device.PathSet, 0, len(ps)-1)
	out = append(out, ps[:idx]...)
	out = append(out, ps[idx+1:]...)
	return out
}

// vgNodeOf returns the VG node of p, if p passes through one.
func vgNodeOf(p device.Path) (device.Node, bool) {
	for _, n := range p {
		if n.Type.Kind == device.KindDm && n.Type.Dm == device.DmLvmVG {
			return n, true
		}
	}
	return device.Node{}, false
}

// resolveLuks implements §4.4.1 and returns the complete replacement for
// valids (the same convention as resolvePV/resolveVG), not just the paths
// to append. This matters because when l.Device is already the top of one
// or more valids entries (e.g. an LV fanned across several manifest-built
// PV routes), every matching entry must have its tail replaced by the
// LUKS node in place. Leaving the original, pre-LUKS entry behind would
// let the validator also offer the physically-consumed LV as an
// independent filesystem target.
func resolveLuks(l *manifest.Luks, valids device.PathSet, snap *snapshot.Snapshot) (device.PathSet, error) {
	mapperPath := device.MapperPath(l.Name)
	if fileExists(mapperPath) {
		return nil, badManifest("luks mapper %s already exists", mapperPath)
	}
	if _, ok := snap.FsDevs[l.Device]; ok {
		return nil, badManifest("luks base %s is already used for a filesystem", l.Device)
	}

	var matched []int
	for i, p := range valids {
		if p.Top().Path == l.Device {
			matched = append(matched, i)
		}
	}
	if len(matched) > 0 {
		base := valids[matched[0]].Top()
		if !device.CanHostLuks(base.Type) {
			return nil, badManifest("luks base %s cannot host luks (is %s)", l.Device, base.Type)
		}
		out := valids.Clone()
		for _, idx := range matched {
			out[idx] = append(out[idx], device.Node{Path: mapperPath, Type: device.Luks()})
		}
		return out, nil
	}

	if routes := findLvmLeafRoutes(snap.Lvms, l.Device); len(routes) > 0 {
		var fanned device.PathSet
		for _, r := range routes {
			src := snap.Lvms[r.key][r.idx]
			clone := src.Clone()
			clone = append(clone, device.Node{Path: mapperPath, Type: device.Luks()})
			fanned = append(fanned, clone)
		}
		for _, r := range routes {
			snap.Lvms[r.key] = removeMatchingTop(snap.Lvms[r.key], l.Device)
		}
		return append(valids, fanned...), nil
	}

	if _, ok := snap.FsReadyDevs[l.Device]; ok {
		delete(snap.FsReadyDevs, l.Device)
		return append(valids, device.Path{
			{Path: l.Device, Type: device.UnknownBlock()},
			{Path: mapperPath, Type: device.Luks()},
		}), nil
	}

	if !fileExists(l.Device) {
		return nil, noSuchDevice(l.Device)
	}

	return append(valids, device.Path{
		{Path: l.Device, Type: device.UnknownBlock()},
		{Path: mapperPath, Type: device.Luks()},
	}), nil
}

// lvmRoute identifies one entry of a sys_lvms PathSet: the key it lives
// under and its index within that key's slice.
type lvmRoute struct {
	key string
	idx int
}

// findLvmLeafRoutes scans every key of lvms for paths whose top-most node
// is an LV at base, the fan-out case of §4.4.1 where base is an existing
// LV reached through one or more PV-rooted routes.
func findLvmLeafRoutes(lvms map[string]device.PathSet, base string) []lvmRoute {
	var out []lvmRoute
	for key, ps := range lvms {
		for i, p := range ps {
			top := p.Top()
			if top.Path == base && top.Type.Kind == device.KindDm && top.Type.Dm == device.DmLvmLV {
				out = append(out, lvmRoute{key: key, idx: i})
			}
		}
	}
	return out
}

// removeMatchingTop drops every path in ps whose top-most node is at
// path, preserving relative order of the rest.
func removeMatchingTop(ps device.PathSet, path string) device.PathSet {
	out := make(device.PathSet, 0, len(ps))
	for _, p := range ps {
		if p.Top().Path == path {
			continue
		}
		out = append(out, p)
	}
	return out
}

// resolvePV implements §4.4.2.
func resolvePV(p string, valids device.PathSet, snap *snapshot.Snapshot) (device.PathSet, error) {
	if _, ok := snap.FsDevs[p]; ok {
		return nil, badManifest("pv %s is already used for a filesystem", p)
	}
	for _, route := range snap.Lvms[p] {
		if _, ok := vgNodeOf(route); ok {
			return nil, badManifest("pv %s is already committed to an existing vg", p)
		}
	}

	if idx := findTopmost(valids, p); idx >= 0 {
		top := valids[idx].Top()
		if top.Type.Kind == device.KindDm && top.Type.Dm == device.DmLvmPV {
			return nil, badManifest("pv %s is declared more than once", p)
		}
		if !device.CanHostPV(top.Type) {
			return nil, badManifest("pv base %s cannot host a pv (is %s)", p, top.Type)
		}
		out := valids.Clone()
		out[idx] = append(out[idx], device.Node{Path: p, Type: device.LvmPV()})
		return out, nil
	}

	if _, ok := snap.FsReadyDevs[p]; ok {
		delete(snap.FsReadyDevs, p)
		return append(valids, device.Path{
			{Path: p, Type: device.UnknownBlock()},
			{Path: p, Type: device.LvmPV()},
		}), nil
	}

	if !fileExists(p) {
		return nil, noSuchDevice(p)
	}

	return append(valids, device.Path{
		{Path: p, Type: device.UnknownBlock()},
		{Path: p, Type: device.LvmPV()},
	}), nil
}

// resolveVG implements §4.4.3, folding in the strengthened PV-exclusivity
// check of the Open Question decision: a PV already committed to a VG
// only conflicts when that VG differs from the one being built here.
func resolveVG(vg manifest.LvmVG, valids device.PathSet, snap *snapshot.Snapshot) (device.PathSet, error) {
	vgPath := device.VGPath(vg.Name)

	for _, pv := range vg.PVs {
		if _, ok := snap.FsDevs[pv]; ok {
			return nil, badManifest("vg %s base %s is already used for a filesystem", vg.Name, pv)
		}

		for _, route := range snap.Lvms[pv] {
			if node, ok := vgNodeOf(route); ok && node.Path != vgPath {
				return nil, badManifest("vg %s base %s was already used for other vg %s", vg.Name, pv, node.Path)
			}
		}
		for _, route := range valids {
			onPV := false
			for _, n := range route {
				if n.Path == pv && n.Type.Kind == device.KindDm && n.Type.Dm == device.DmLvmPV {
					onPV = true
					break
				}
			}
			if node, ok := vgNodeOf(route); onPV && ok && node.Path != vgPath {
				return nil, badManifest("vg %s base %s was already used for other vg %s", vg.Name, pv, node.Path)
			}
		}

		if idx := findTopmost(valids, pv); idx >= 0 {
			top := valids[idx].Top()
			if top.Type.Kind != device.KindDm || top.Type.Dm != device.DmLvmPV {
				return nil, badManifest("vg %s base %s is not a pv (is %s)", vg.Name, pv, top.Type)
			}
			out := valids.Clone()
			out[idx] = append(out[idx], device.Node{Path: vgPath, Type: device.LvmVG()})
			valids = out
			continue
		}

		routes := snap.Lvms[pv]
		foundRoute := false
		for i, route := range routes {
			top := route.Top()
			if top.Path != pv || top.Type.Kind != device.KindDm || top.Type.Dm != device.DmLvmPV {
				continue
			}
			clone := route.Clone()
			clone = append(clone, device.Node{Path: vgPath, Type: device.LvmVG()})
			valids = append(valids, clone)
			snap.Lvms[pv] = removeAt(routes, i)
			foundRoute = true
			break
		}
		if !foundRoute {
			return nil, badManifest("vg %s: no pv matches base %s", vg.Name, pv)
		}
	}

	return valids, nil
}

// resolveLV implements §4.4.4's fan-out: the target LV path is appended
// to every path (from valids or sys_lvms) that reaches the target VG.
func resolveLV(lv manifest.LvmLV, valids device.PathSet, snap *snapshot.Snapshot) (device.PathSet, error) {
	vgPath := device.VGPath(lv.VG)
	lvPath := device.LVPath(lv.VG, lv.Name)

	if _, ok := snap.FsDevs[lvPath]; ok {
		return nil, badManifest("lv %s is already used for a filesystem", lvPath)
	}
	if findTopmost(valids, lvPath) >= 0 {
		return nil, badManifest("lv %s is declared more than once", lvPath)
	}
	for _, routes := range snap.Lvms {
		if findTopmost(routes, lvPath) >= 0 {
			return nil, badManifest("lv %s is declared more than once", lvPath)
		}
	}

	var added device.PathSet

	for _, routes := range snap.Lvms {
		for _, route := range routes {
			node, ok := vgNodeOf(route)
			if !ok || node.Path != vgPath {
				continue
			}
			prefix := make(device.Path, 0, len(route))
			for _, n := range route {
				prefix = append(prefix, n)
				if n.Path == vgPath && n.Type.Kind == device.KindDm && n.Type.Dm == device.DmLvmVG {
					break
				}
			}
			prefix = append(prefix, device.Node{Path: lvPath, Type: device.LvmLV()})
			added = append(added, prefix)
		}
	}

	for _, p := range valids {
		top := p.Top()
		if top.Path != vgPath || top.Type.Kind != device.KindDm || top.Type.Dm != device.DmLvmVG {
			continue
		}
		clone := p.Clone()
		clone = append(clone, device.Node{Path: lvPath, Type: device.LvmLV()})
		added = append(added, clone)
	}

	if len(added) == 0 {
		return nil, badManifest("lv %s: unknown vg %s", lvPath, lv.VG)
	}

	return added, nil
}
