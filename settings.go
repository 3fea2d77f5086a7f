//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Adapted from: original_source/inc/argum/tokenizer.h (Settings)
//

package optparse

// Setting mutates a [*Parser]'s prefix registry at construction time.
// Apply with [NewParser]; configuration errors returned by a Setting
// are terminal (see package doc).
type Setting func(px *Parser) error

func combine(settings ...Setting) Setting {
	return func(px *Parser) error {
		for _, s := range settings {
			if err := s(px); err != nil {
				return err
			}
		}
		return nil
	}
}

// AddLongPrefix registers prefix (e.g. `--`) for long option names.
func AddLongPrefix(prefix string) Setting {
	return func(px *Parser) error { return px.registry.AddLongPrefix(prefix) }
}

// AddShortPrefix registers prefix (e.g. `-`) for bundlable short option names.
func AddShortPrefix(prefix string) Setting {
	return func(px *Parser) error { return px.registry.AddShortPrefix(prefix) }
}

// AddOptionStop marks prefix (e.g. `--`) as an option-stop marker.
func AddOptionStop(prefix string) Setting {
	return func(px *Parser) error { return px.registry.AddOptionStop(prefix) }
}

// AddValueDelimiter registers a byte (e.g. `=`) that splits an attached
// value from an option name.
func AddValueDelimiter(c byte) Setting {
	return func(px *Parser) error {
		px.registry.AddValueDelimiter(c)
		return nil
	}
}

// DisableAbbreviation turns off long/multi-short prefix abbreviation,
// requiring exact name matches.
func DisableAbbreviation() Setting {
	return func(px *Parser) error {
		px.registry.SetAllowAbbreviation(false)
		return nil
	}
}

// CommonUnix is the GNU-style preset: `--` long, `-` short, `--` stop, `=` delimiter.
func CommonUnix() Setting {
	return combine(
		AddLongPrefix("--"),
		AddShortPrefix("-"),
		AddOptionStop("--"),
		AddValueDelimiter('='),
	)
}

// UnixLongOnly treats both `-` and `--` as long-option prefixes (no bundling).
func UnixLongOnly() Setting {
	return combine(
		AddLongPrefix("-"),
		AddLongPrefix("--"),
		AddOptionStop("--"),
		AddValueDelimiter('='),
	)
}

// WindowsShort is the DOS-style preset: `/` and `-` as short prefixes, `:` delimiter.
func WindowsShort() Setting {
	return combine(
		AddShortPrefix("/"),
		AddShortPrefix("-"),
		AddOptionStop("--"),
		AddValueDelimiter(':'),
	)
}

// WindowsLong is the DOS-style preset treating `/`, `-`, and `--` as long prefixes.
func WindowsLong() Setting {
	return combine(
		AddLongPrefix("/"),
		AddLongPrefix("-"),
		AddLongPrefix("--"),
		AddOptionStop("--"),
		AddValueDelimiter(':'),
	)
}
