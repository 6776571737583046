/*
Package ucd answers questions about single Unicode code-points, as needed by
the string methods of package pystr.

The Unicode Character Database (UCD) assigns a general category and a set of
binary properties to every code-point. Python's str methods are defined in
terms of these properties, e.g.

	isupper()       at least one cased character, no lowercase or titlecase character
	isidentifier()  XID_Start (or '_') followed by XID_Continue characters
	isspace()       bidi class WS, B or S, or general category Zs
	isprintable()   neither in category C* nor Z*, except for ASCII space

Package ucd holds one range table per property. Most tables are derived from
the tables of the Go standard library package unicode, i.e. they reflect the
Unicode version of the Go release used to build the program. Numeric types
(isdecimal, isdigit, isnumeric) are not covered by package unicode; they are
read from an embedded copy of DerivedNumericType.txt.

Tables are created lazily on first use and never change afterwards. Clients
may call

	SetupClasses()

beforehand to move the initialization cost to a point of their choosing.
Initialization is concurrency-safe, and so is reading the tables.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ucd

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pystr.ucd'.
func tracer() tracing.Trace {
	return tracing.Select("pystr.ucd")
}
