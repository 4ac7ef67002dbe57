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

package logger_test

import (
	"strings"
	"testing"

	"github.com/JoniSt/softrender-engine/logger"
	"github.com/JoniSt/softrender-engine/test"
)

func TestLog(t *testing.T) {
	logger.Clear()

	logger.Log("test", "hello")
	logger.Logf("test", "answer = %d", 42)

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: hello\ntest: answer = 42\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same")
	logger.Log("test", "same")
	logger.Log("test", "same")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: same (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "one")
	logger.Log("test", "two")
	logger.Log("test", "three")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.ExpectEquality(t, s.String(), "test: two\ntest: three\n")

	// asking for more entries than exist writes what there is
	s.Reset()
	logger.Tail(s, 100)
	test.ExpectEquality(t, s.String(), "test: one\ntest: two\ntest: three\n")
}

func TestBorrowLog(t *testing.T) {
	logger.Clear()

	logger.Log("alpha", "a")
	logger.Log("beta", "b")

	logger.BorrowLog(func(entries []logger.Entry) {
		test.DemandEquality(t, len(entries), 2)
		test.ExpectEquality(t, entries[0].Tag, "alpha")
		test.ExpectEquality(t, entries[1].Tag, "beta")
	})
}
