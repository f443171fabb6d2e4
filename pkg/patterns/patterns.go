// Package patterns provides ready-made validators for common input formats.
//
// Every pattern is a rejigs.Subpattern that appends a pattern anchored at
// both ends, so it is used through Apply:
//
//	err := rejigs.Create().Apply(patterns.Email).Validate(addr)
package patterns

import "github.com/praetorian-inc/rejigs"

type expr = rejigs.Expression

// passwordSpecials are the characters StrongPassword counts as special.
const passwordSpecials = "@$!%*?&"

var (
	hexDigit = rejigs.Fragment().Either(
		func(r expr) expr { return r.AnyInRange('0', '9') },
		func(r expr) expr { return r.AnyInRange('a', 'f') },
		func(r expr) expr { return r.AnyInRange('A', 'F') },
	)

	hexPair = rejigs.Fragment().Use(hexDigit).Exactly(2)

	// octet is a decimal number 0-255 without leading zeros.
	octet = rejigs.Fragment().Either(
		func(r expr) expr { return r.Text("25").AnyInRange('0', '5') },
		func(r expr) expr { return r.Text("2").AnyInRange('0', '4').AnyDigit() },
		func(r expr) expr { return r.Text("1").AnyDigit().Exactly(2) },
		func(r expr) expr { return r.AnyInRange('1', '9').Optional().AnyDigit() },
	)

	// month and day accept an optional leading zero; month2 and day2 require
	// two digits.
	month = rejigs.Fragment().Either(
		func(r expr) expr { return r.OptionalText("0").AnyInRange('1', '9') },
		func(r expr) expr { return r.Text("1").AnyInRange('0', '2') },
	)
	day = rejigs.Fragment().Either(
		func(r expr) expr { return r.OptionalText("0").AnyInRange('1', '9') },
		func(r expr) expr { return r.AnyInRange('1', '2').AnyDigit() },
		func(r expr) expr { return r.Text("3").AnyInRange('0', '1') },
	)
	month2 = rejigs.Fragment().Either(
		func(r expr) expr { return r.Text("0").AnyInRange('1', '9') },
		func(r expr) expr { return r.Text("1").AnyInRange('0', '2') },
	)
	day2 = rejigs.Fragment().Either(
		func(r expr) expr { return r.Text("0").AnyInRange('1', '9') },
		func(r expr) expr { return r.AnyInRange('1', '2').AnyDigit() },
		func(r expr) expr { return r.Text("3").AnyInRange('0', '1') },
	)
	year = rejigs.Fragment().AnyDigit().Exactly(4)

	hour24 = rejigs.Fragment().Either(
		func(r expr) expr { return r.AnyInRange('0', '1').AnyDigit() },
		func(r expr) expr { return r.Text("2").AnyInRange('0', '3') },
	)
	hour12 = rejigs.Fragment().Either(
		func(r expr) expr { return r.OptionalText("0").AnyInRange('1', '9') },
		func(r expr) expr { return r.Text("1").AnyInRange('0', '2') },
	)
	sexagesimal = rejigs.Fragment().AnyInRange('0', '5').AnyDigit()

	// separator is a dash, dot or whitespace between phone number groups.
	separator = rejigs.Fragment().Either(
		func(r expr) expr { return r.AnyOf("-.") },
		func(r expr) expr { return r.AnySpace() },
	)
	cardSeparator = rejigs.Fragment().Either(
		func(r expr) expr { return r.Text("-") },
		func(r expr) expr { return r.AnySpace() },
	)
)

// Email matches an address of the form local@domain.tld with a two to six
// letter lower-case top-level domain.
func Email(e expr) expr {
	return e.AtStart().
		OneOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf("._%+-") }).
		Text("@").
		OneOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf(".-") }).
		Text(".").
		AnyInRange('a', 'z').Between(2, 6).
		AtEnd()
}

// URL matches an http or https URL with optional port, path, query and
// fragment.
func URL(e expr) expr {
	return e.AtStart().
		Text("http").OptionalText("s").Text("://").
		OneOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf("-.") }).
		OptionalOf(func(r expr) expr {
			return r.Text(":").AnyDigit().OneOrMore()
		}).
		OptionalOf(func(r expr) expr {
			return r.Text("/").ZeroOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf("/_.-") })
		}).
		OptionalOf(func(r expr) expr {
			return r.Text("?").ZeroOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf("&=%.-") })
		}).
		OptionalOf(func(r expr) expr {
			return r.Text("#").ZeroOrMoreOf(func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf(".-") })
		}).
		AtEnd()
}

// IPv4 matches a dotted-quad address with octets 0-255.
func IPv4(e expr) expr {
	return e.AtStart().
		Use(octet).
		ExactlyOf(3, func(r expr) expr { return r.Text(".").Use(octet) }).
		AtEnd()
}

// PhoneNumber matches a ten-digit US number with optional +1 prefix,
// parenthesized area code and dash, dot or space separators.
func PhoneNumber(e expr) expr {
	return e.AtStart().
		OptionalOf(func(r expr) expr { return r.Text("+1").Use(separator) }).
		OptionalText("(").
		AnyDigit().Exactly(3).
		OptionalText(")").
		Use(separator).Optional().
		AnyDigit().Exactly(3).
		Use(separator).Optional().
		AnyDigit().Exactly(4).
		AtEnd()
}

// CreditCard matches sixteen digits in groups of four, optionally separated
// by dashes or spaces. It does not check the Luhn digit.
func CreditCard(e expr) expr {
	return e.AtStart().
		AnyDigit().Exactly(4).
		ExactlyOf(3, func(r expr) expr {
			return r.Use(cardSeparator).Optional().AnyDigit().Exactly(4)
		}).
		AtEnd()
}

// StrongPassword matches at least eight letters, digits or @$!%*?& with at
// least one lower-case letter, upper-case letter, digit and special
// character.
func StrongPassword(e expr) expr {
	return e.AtStart().
		Apply(contains(func(r expr) expr { return r.AnyInRange('a', 'z') })).
		Apply(contains(func(r expr) expr { return r.AnyInRange('A', 'Z') })).
		Apply(contains(expr.AnyDigit)).
		Apply(contains(func(r expr) expr { return r.AnyOf(passwordSpecials) })).
		AtLeastOf(8, func(r expr) expr { return r.AnyLetterOrDigit().Or().AnyOf(passwordSpecials) }).
		AtEnd()
}

// contains returns a zero-width lookahead asserting that p occurs somewhere
// after the current position.
func contains(p rejigs.Subpattern) rejigs.Subpattern {
	return func(e expr) expr {
		return e.Raw("(?=").AnyCharacter().ZeroOrMore().Use(p(rejigs.Create())).Raw(")")
	}
}

// HexColor matches #RGB or #RRGGBB.
func HexColor(e expr) expr {
	return e.AtStart().
		Text("#").
		Either(
			func(r expr) expr { return r.Use(hexDigit).Exactly(6) },
			func(r expr) expr { return r.Use(hexDigit).Exactly(3) },
		).
		AtEnd()
}

// DateMMDDYYYY matches MM/DD/YYYY; month and day may omit the leading zero.
func DateMMDDYYYY(e expr) expr {
	return e.AtStart().
		Use(month).Text("/").
		Use(day).Text("/").
		Use(year).
		AtEnd()
}

// DateDDMMYYYY matches DD/MM/YYYY.
func DateDDMMYYYY(e expr) expr {
	return e.AtStart().
		Use(day2).Text("/").
		Use(month2).Text("/").
		Use(year).
		AtEnd()
}

// DateISO matches the ISO 8601 calendar date YYYY-MM-DD.
func DateISO(e expr) expr {
	return e.AtStart().
		Use(year).Text("-").
		Use(month2).Text("-").
		Use(day2).
		AtEnd()
}

// DateUTC matches an ISO 8601 timestamp with up to millisecond precision and
// a Z or ±hh:mm zone designator.
func DateUTC(e expr) expr {
	zone := rejigs.Fragment().Either(
		func(r expr) expr { return r.Text("Z") },
		func(r expr) expr { return r.AnyOf("+-").Use(hour24).Text(":").Use(sexagesimal) },
	)

	return e.AtStart().
		Use(year).Text("-").
		Use(month2).Text("-").
		Use(day2).
		Text("T").
		Use(hour24).Text(":").
		Use(sexagesimal).Text(":").
		Use(sexagesimal).
		OptionalOf(func(r expr) expr { return r.Text(".").AnyDigit().Between(1, 3) }).
		Use(zone).
		AtEnd()
}

// Time24Hour matches HH:MM from 00:00 to 23:59.
func Time24Hour(e expr) expr {
	return e.AtStart().
		Use(hour24).Text(":").
		Use(sexagesimal).
		AtEnd()
}

// Time12Hour matches h:MM or hh:MM followed by AM or PM in either case,
// optionally separated by whitespace.
func Time12Hour(e expr) expr {
	return e.AtStart().
		Use(hour12).Text(":").
		Use(sexagesimal).
		AnySpace().Optional().
		Either(
			func(r expr) expr { return r.Text("AM") },
			func(r expr) expr { return r.Text("PM") },
			func(r expr) expr { return r.Text("am") },
			func(r expr) expr { return r.Text("pm") },
		).
		AtEnd()
}

// ZipCode matches a five-digit US ZIP code with optional +4 extension.
func ZipCode(e expr) expr {
	return e.AtStart().
		AnyDigit().Exactly(5).
		OptionalOf(func(r expr) expr { return r.Text("-").AnyDigit().Exactly(4) }).
		AtEnd()
}

// SSN matches a US Social Security Number in XXX-XX-XXXX form.
func SSN(e expr) expr {
	return e.AtStart().
		AnyDigit().Exactly(3).Text("-").
		AnyDigit().Exactly(2).Text("-").
		AnyDigit().Exactly(4).
		AtEnd()
}

// MacAddress matches six hex pairs separated consistently by colons or
// dashes.
func MacAddress(e expr) expr {
	return e.AtStart().
		Either(macWith(":"), macWith("-")).
		AtEnd()
}

func macWith(sep string) rejigs.Subpattern {
	return func(r expr) expr {
		return r.Use(hexPair).ExactlyOf(5, func(r expr) expr { return r.Text(sep).Use(hexPair) })
	}
}
