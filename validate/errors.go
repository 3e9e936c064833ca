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

import "fmt"

// BadManifestError reports a manifest-level contract violation: the
// manifest is well-formed YAML but describes something the device model
// cannot realize (a size that won't parse, a duplicate mountpoint, a PV
// claimed by two VGs, and so on).
type BadManifestError struct {
	Reason string
}

func (e *BadManifestError) Error() string {
	return e.Reason
}

func badManifest(format string, args ...interface{}) error {
	return &BadManifestError{Reason: fmt.Sprintf(format, args...)}
}

// NoSuchDeviceError reports that a manifest referenced a base device path
// that does not exist on disk and is not described anywhere else in the
// manifest or the snapshot.
type NoSuchDeviceError struct {
	Path string
}

func (e *NoSuchDeviceError) Error() string {
	return fmt.Sprintf("no such device: %s", e.Path)
}

func noSuchDevice(path string) error {
	return &NoSuchDeviceError{Path: path}
}

// ValidationError reports that a collaborator the validator depends on
// (but does not implement) is missing or unusable, e.g. an expected
// external tool or data file.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// BugError reports an internal invariant violation: a defect in this
// program, not in the manifest it was given.
type BugError struct {
	Reason string
}

func (e *BugError) Error() string {
	return fmt.Sprintf("bug: %s", e.Reason)
}

func bug(format string, args ...interface{}) error {
	return &BugError{Reason: fmt.Sprintf(format, args...)}
}
