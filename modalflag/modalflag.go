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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes, each
// with its own set of flags.
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, like the build/test/doc modes of the go
// command. Modes are declared with AddSubModes() before calling Parse();
// after a successful Parse() the selected mode is available from Mode() and
// the per-mode flags can be declared (after a call to NewMode()) and parsed
// in turn. Mode comparisons are case insensitive.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "performance", "capture")
//
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RUN":
//		...
//	}
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or you will not see any
// help messages.
type Modes struct {
	// where to print output (help messages etc). should be os.Stdout in most
	// instances
	Output io.Writer

	// the underlying flagset. a new one is created on every call to
	// NewArgs() and NewMode()
	flags *flag.FlagSet

	// the argument list given to NewArgs() and how far into it successive
	// Parse() calls have travelled
	args    []string
	argsIdx int

	// the sub-modes declared for the next Parse() and the series of modes
	// found by all Parse() calls so far
	subModes []string
	path     []string

	// extensive help text to print in addition to the flag summary
	additionalHelp string
}

func (md *Modes) String() string {
	return strings.Join(md.path, modeSeparator)
}

// Mode returns the last mode to be encountered by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// NewArgs initialises the Modes struct with a string of arguments (from the
// command line for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that further arguments should be considered part of a
// new mode, with a fresh set of flags and sub-modes.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AddSubModes declares the valid modes for the next call to Parse(). The
// first sub-mode in the list is the default, used when no mode argument is
// given.
func (md *Modes) AddSubModes(subModes ...string) {
	for _, m := range subModes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AdditionalHelp adds extensive help text to be displayed in addition to the
// regular help on available flags.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// a list of valid ParseResult values.
const (
	// parsing succeeded and command line processing can continue. if
	// sub-modes were declared, Mode() says which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Parse the current layer of arguments. Help messages, including the list of
// available sub-modes, are printed to the Output field automatically; the
// ParseHelp return value only tells the caller that it happened.
func (md *Modes) Parse() (ParseResult, error) {
	// capture the flag package's usage output so it can be reshaped
	buf := &strings.Builder{}
	md.flags.SetOutput(buf)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			md.printHelp(buf.String())
			return ParseHelp, nil
		}
		return ParseError, err
	}

	if len(md.subModes) > 0 {
		// assume the default mode unless the first non-flag argument matches
		// a declared sub-mode. when it does, step over it so the next layer
		// of Parse() starts after the mode selector
		mode := md.subModes[0]

		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = arg
				md.argsIdx += len(md.args[md.argsIdx:]) - md.flags.NArg() + 1
				break // for loop
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) printHelp(flagUsage string) {
	if md.Output == nil {
		return
	}

	if md.String() != "" {
		fmt.Fprintf(md.Output, "Usage of %s mode:\n", md.String())
	} else {
		fmt.Fprintln(md.Output, "Usage:")
	}

	// the flag package's usage text begins with its own banner line
	if s := strings.SplitN(flagUsage, "\n", 2); len(s) > 1 {
		io.WriteString(md.Output, s[1])
	}

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}

// RemainingArgs returns the arguments left over after a call to Parse() ie.
// arguments that aren't flags. If the Parse() selected a sub-mode, the mode
// selector is included; the idiomatic NewMode()/Parse() sequence for the
// selected mode steps over it.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that isn't a flag. The empty string
// is returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}
