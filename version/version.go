// This file is part of Softrender.
//
// Softrender is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Softrender is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Softrender.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name and release number of the program, along
// with whatever vcs information the Go toolchain embedded at build time.
package version

import "runtime/debug"

// The name to use when referring to the application.
const ApplicationName = "Softrender"

// if number is empty then the project was not built from a release tag
var number string

// revision contains the vcs revision. if the source had been modified but
// not committed the revision is suffixed with "+dirty"
var revision string

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if revision == "" {
		revision = "no vcs information"
	} else if modified {
		revision += "+dirty"
	}
}

// Version returns the version string and the vcs revision. If the version
// string is "unreleased" the program was not built from a release tag and
// the revision is the better identifier.
func Version() (string, string) {
	if number == "" {
		return "unreleased", revision
	}
	return number, revision
}
