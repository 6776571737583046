/*
Package pystr is an immutable, Unicode-aware text type with the semantics of
Python's built-in str.

Description

Python strings are sequences of Unicode code-points. Indexing and slicing
count code-points, not bytes, and negative indices count from the end. Every
method producing text creates a new value; a string never changes after
creation. pystr brings these semantics to Go: type Str holds a sequence of
runes and offers the methods of Python's str, with matching results for the
edge cases, like

	" aBc  dEf ".split(maxsplit=1)  →  ["aBc", "dEf "]
	"[-^str-]".strip("[^a-b]")       →  "str"
	repr(chr(888))                   →  '\u0378'

Python code frequently sub-classes str. Type Derived mimics this: a derived
value carries a type name and embeds its base Str. Methods creating new text
return the base type, while methods with nothing to do return the receiver
itself.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The algorithms live in sub-packages, which operate on plain rune slices:

	ucd        code-point properties (case, whitespace, identifiers, …)
	escape     repr() and the unicode-escape codec
	search     trimming and substring search
	split      fields, separators and lines
	translate  translation tables
	codec      named encodings and error policies

Package pystr ties them together into a value type. Clients which need just
one of the algorithms may use a sub-package directly.

Python's exceptions become Go errors. Package pystr defines sentinel errors
ErrNotFound, ErrIndex, ErrValue and ErrType; sub-packages define their own.
All of them are checked with errors.Is.

Concurrency

Str, Derived and Bytes values are immutable and may be shared between
goroutines without locking.

*/
package pystr

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'pystr'.
func tracer() tracing.Trace {
	return tracing.Select("pystr")
}
