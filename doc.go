//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: https://github.com/bassosimone/clip/blob/v0.8.0/pkg/nparser/doc.go
//

/*
Package optparse implements an adaptive command-line argument parser:
a tokenizer with long-option abbreviation and short-option bundling, a
parser driver that dispatches to per-option and per-positional
handlers while partitioning positional arguments against their
occurrence ranges, and a composable validator algebra for
cross-argument rules.

[NewParser] with no arguments configures GNU-style defaults: `-` for
short options, `--` for long options, `--` as the option-stop marker,
and `=` as the attached-value delimiter. Pass one of [CommonUnix],
[UnixLongOnly], [WindowsShort], [WindowsLong], or a custom combination
of [AddLongPrefix]/[AddShortPrefix]/[AddOptionStop]/[AddValueDelimiter]
settings to parse a different convention.

To parse arguments, you need to:

 1. Create a [*Parser] with [NewParser].

 2. Declare options and positionals with [*Parser.Add], passing
    [*Option] or [*Positional] values built with [NewOption] and
    [NewPositional].

 3. Optionally register cross-argument rules with [*Parser.AddValidator],
    built from the [github.com/bassosimone/optparse/validate] package.

 4. Invoke [*Parser.Parse] passing it `os.Args[1:]`, or
    [*Parser.ParseUntilUnknown] when the caller wants to hand the
    unconsumed tail to a subcommand instead of treating it as an error.

# Option Argument Kinds

Each [Option] has an [ArgKind] fixing which handler field the
`With*Argument` constructor set:

 1. [ArgNone]: the option takes no argument (e.g. `--verbose`).

 2. [ArgOptional]: the option takes an argument that may be omitted. An
    attached value (`--level=5`) is used when present; otherwise a bare
    `--level` consumes the following token as its value when that token
    is an argument rather than an option, unless [Option.RequireAttached]
    is set, in which case the handler receives no value.

 3. [ArgRequired]: the option always takes an argument, either attached
    (`--output=FILE`, `-oFILE`) or as the following token (`--output
    FILE`, `-o FILE`), unless [Option.RequireAttached] is set.

# Positional Partitioning

Positional arguments are matched against their declared occurrence
ranges using a greedy, left-to-right partition, equivalent to matching
the regex `A{a1,b1} A{a2,b2} ... A{am,bm} Ax` where `Ax` is any
trailing overflow. A positional with a [ZeroOrMore] or [OnceOrMore]
range only yields to a later slot once no further input remains to
satisfy the later slots' minimums.

# Errors

Configuration errors — a duplicate option name, a name without a
registered prefix, a prefix registered as both long and short — are
plain Go errors returned from [*Parser.Add] or, for prefix-registry
settings, surfaced from the first [*Parser.Parse] call. They indicate
a programming mistake, not malformed user input.

Parsing errors are a single [*ParseError] carrying a closed [ErrorCode]
plus structured fields; the first error wins and parsing stops
immediately with no rollback of handler side effects that already ran.
Set [Parser.ErrorFormatter] to substitute application-specific message
text without touching the parsing engine.
*/
package optparse
