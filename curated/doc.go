// This file is part of GopherVGA.
//
// GopherVGA is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherVGA is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherVGA.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors. For
// example:
//
//	e := curated.Errorf("colorterm: %v", err)
//
//	if curated.Is(e, "colorterm: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("mirror: %v", err)
//	f := curated.Errorf("run mode: %v", e)
//
//	if curated.Has(f, "mirror: %v") {
//		fmt.Println("true")
//	}
//
// In this example a call to Is() with the pattern "mirror: %v" would fail for
// error f because f was created with the pattern "run mode: %v" - the mirror
// error is "wrapped" inside it.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated and
// uncurated errors as being the difference between 'expected' and
// 'unexpected' errors, depending on how we choose to handle the result of the
// function call.
//
// The Error() function implementation for curated errors ensures that the
// message chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors: a function can
// always wrap with its own pattern without worrying about stuttering
// messages.
package curated
