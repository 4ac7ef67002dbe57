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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/JoniSt/softrender-engine/modalflag"
	"github.com/JoniSt/softrender-engine/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-xyzzy", "file"})
	xyzzy := md.AddBool("xyzzy", false, "a test flag")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, *xyzzy)

	test.DemandEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "file")
}

func TestModeSelection(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"performance", "-duration", "5s"})
	md.AddSubModes("run", "performance", "capture")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "PERFORMANCE")

	// the mode's own flags are a new parsing layer
	md.NewMode()
	duration := md.AddString("duration", "10s", "run time")
	p, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *duration, "5s")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})
	md.AddSubModes("run", "capture")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// the first declared sub-mode is the default
	test.ExpectEquality(t, md.Mode(), "RUN")
}

func TestModeCaseInsensitive(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"CaPtUrE"})
	md.AddSubModes("run", "capture")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CAPTURE")
}

func TestParseError(t *testing.T) {
	md := modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "capture")

	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, strings.Contains(output.String(), "available sub-modes: RUN, CAPTURE"))
}
