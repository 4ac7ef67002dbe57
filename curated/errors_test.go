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

package curated_test

import (
	"errors"
	"testing"

	"github.com/JoniSt/softrender-engine/curated"
	"github.com/JoniSt/softrender-engine/test"
)

const testPattern = "test error: %s"
const otherPattern = "other error: %s"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))

	// plain errors are not curated
	f := errors.New("plain")
	test.ExpectFailure(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.Is(f, testPattern))

	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(otherPattern, e)

	test.ExpectSuccess(t, curated.Has(f, otherPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	// Is() does not look down the chain
	test.ExpectFailure(t, curated.Is(f, testPattern))
}

func TestDeduplication(t *testing.T) {
	// wrapping an error in the same pattern does not repeat the message part
	e := curated.Errorf("setup error: %v", errors.New("foo"))
	f := curated.Errorf("setup error: %v", e)
	test.ExpectEquality(t, f.Error(), "setup error: foo")
}
