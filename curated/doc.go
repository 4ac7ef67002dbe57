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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the Errorf() function in
// the fmt package, and returns an error. The pattern doubles as the error's
// identity: the Is() function checks whether an error was created from a
// specific pattern and the Has() function checks whether the pattern occurs
// anywhere in the error chain.
//
//	e := curated.Errorf(sdl.SetupError, err)
//
//	if curated.Has(e, sdl.SetupError) {
//		...
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. An uncurated error is one this program did not
// anticipate.
//
// The Error() implementation normalises the message chain by dropping
// duplicate adjacent parts, which alleviates the problem of when and how to
// wrap errors as they travel up the call stack.
package curated
