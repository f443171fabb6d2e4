package patterns

import (
	"github.com/praetorian-inc/rejigs"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

type builtin struct {
	id          string
	name        string
	description string
	pattern     rejigs.Subpattern
	keywords    []string
	categories  []string
	examples    []string
	negatives   []string
}

var builtins = []builtin{
	{
		id:          "builtin.email",
		name:        "Email Address",
		description: "Address of the form local@domain.tld",
		pattern:     Email,
		keywords:    []string{"@"},
		categories:  []string{"contact"},
		examples: []string{
			"user@example.com",
			"test.email@domain.org",
			"user+tag@example.co.uk",
			"firstname.lastname@company.travel",
			"user_name@sub-domain.example.museum",
			"test123@example.io",
			"a@b.co",
		},
		negatives: []string{
			"invalid.email",
			"@example.com",
			"user@",
			"user@domain",
			"user@domain.",
			"user@domain.c",
			"user name@example.com",
			"user@domain.toolongextension",
		},
	},
	{
		id:          "builtin.url",
		name:        "URL",
		description: "http or https URL with optional port, path, query and fragment",
		pattern:     URL,
		keywords:    []string{"http"},
		categories:  []string{"web"},
		examples: []string{
			"http://example.com",
			"https://www.example.com",
			"https://sub.domain.example.org",
			"http://example.com:8080",
			"https://example.com/path/to/resource",
			"https://example.com/search?q=test&lang=en",
			"https://example.com/page#section",
			"https://api.example.com/v1/users?id=123&format=json#results",
		},
		negatives: []string{
			"ftp://example.com",
			"example.com",
			"://example.com",
			"http://",
			"https://",
		},
	},
	{
		id:          "builtin.ipv4",
		name:        "IPv4 Address",
		description: "Dotted-quad address with octets 0-255",
		pattern:     IPv4,
		keywords:    []string{"."},
		categories:  []string{"network"},
		examples: []string{
			"192.168.1.1",
			"10.0.0.1",
			"172.16.0.1",
			"127.0.0.1",
			"255.255.255.255",
			"0.0.0.0",
			"8.8.8.8",
			"203.0.113.1",
			"99.99.99.99",
		},
		negatives: []string{
			"256.1.1.1",
			"192.168.1",
			"192.168.1.1.1",
			"192.168.1.256",
			"192.168.-1.1",
			"192.168.1.",
			".192.168.1.1",
			"192.168.1.01",
		},
	},
	{
		id:          "builtin.phone_us",
		name:        "US Phone Number",
		description: "Ten-digit US number with optional +1 prefix and separators",
		pattern:     PhoneNumber,
		categories:  []string{"contact"},
		examples: []string{
			"5551234567",
			"555-123-4567",
			"555.123.4567",
			"555 123 4567",
			"(555) 123-4567",
			"(555)123-4567",
			"+1-555-123-4567",
			"+1.555.123.4567",
			"+1 555 123 4567",
		},
		negatives: []string{
			"555123456",
			"55512345678",
			"555-123-456",
			"555-123-45678",
			"abc-123-4567",
			"+2 555-123-4567",
		},
	},
	{
		id:          "builtin.credit_card",
		name:        "Credit Card Number",
		description: "Sixteen digits in groups of four",
		pattern:     CreditCard,
		categories:  []string{"finance"},
		examples: []string{
			"1234567890123456",
			"1234 5678 9012 3456",
			"1234-5678-9012-3456",
			"1234567812345678",
			"1234 5678 1234 5678",
		},
		negatives: []string{
			"123456789012345",
			"12345678901234567",
			"1234-5678-9012-345",
			"1234.5678.9012.3456",
			"abcd-efgh-ijkl-mnop",
		},
	},
	{
		id:          "builtin.strong_password",
		name:        "Strong Password",
		description: "Eight or more characters with lower, upper, digit and special",
		pattern:     StrongPassword,
		categories:  []string{"security"},
		examples: []string{
			"Password123!",
			"MyStr0ng&P@ssw0rd",
			"Test123$",
			"Abcd1234!",
			"ComplexP@ss1",
			"Str0ng*Password!",
		},
		negatives: []string{
			"password",
			"PASSWORD",
			"12345678",
			"Password",
			"password123",
			"PASSWORD123",
			"Password!",
			"Pass1!",
			"NoDigits!",
			"nouppercasehere123!",
			"NOLOWERCASE123!",
			"NoSpecialChar123",
		},
	},
	{
		id:          "builtin.hex_color",
		name:        "Hex Color",
		description: "#RGB or #RRGGBB color code",
		pattern:     HexColor,
		keywords:    []string{"#"},
		categories:  []string{"web"},
		examples: []string{
			"#fff",
			"#000",
			"#123",
			"#ffffff",
			"#000000",
			"#123456",
			"#abcdef",
			"#ABCDEF",
			"#123ABC",
		},
		negatives: []string{
			"fff",
			"#ff",
			"#ffff",
			"#fffffff",
			"#gggggg",
			"#123xyz",
		},
	},
	{
		id:          "builtin.date_mdy",
		name:        "Date (MM/DD/YYYY)",
		description: "US-style date; month and day may omit the leading zero",
		pattern:     DateMMDDYYYY,
		keywords:    []string{"/"},
		categories:  []string{"datetime"},
		examples: []string{
			"01/01/2024",
			"12/31/2024",
			"06/15/2023",
			"02/29/2024",
			"11/30/1999",
			"1/5/2024",
		},
		negatives: []string{
			"13/01/2024",
			"00/01/2024",
			"01/32/2024",
			"01/00/2024",
			"01/01/24",
			"2024/01/01",
		},
	},
	{
		id:          "builtin.date_dmy",
		name:        "Date (DD/MM/YYYY)",
		description: "Day-first date with two-digit day and month",
		pattern:     DateDDMMYYYY,
		keywords:    []string{"/"},
		categories:  []string{"datetime"},
		examples: []string{
			"01/01/2024",
			"31/12/2024",
			"15/06/2023",
			"29/02/2024",
			"30/11/1999",
		},
		negatives: []string{
			"32/01/2024",
			"00/01/2024",
			"01/13/2024",
			"01/00/2024",
			"1/1/2024",
			"01/01/24",
		},
	},
	{
		id:          "builtin.date_iso",
		name:        "Date (ISO 8601)",
		description: "Calendar date YYYY-MM-DD",
		pattern:     DateISO,
		keywords:    []string{"-"},
		categories:  []string{"datetime"},
		examples: []string{
			"2024-01-01",
			"2024-12-31",
			"2023-06-15",
			"2024-02-29",
			"1999-11-30",
		},
		negatives: []string{
			"2024-13-01",
			"2024-00-10",
			"2024-01-32",
			"2024-1-1",
			"24-01-01",
			"2024/01/01",
		},
	},
	{
		id:          "builtin.datetime_utc",
		name:        "Timestamp (ISO 8601)",
		description: "Date and time with optional milliseconds and a zone designator",
		pattern:     DateUTC,
		keywords:    []string{"t"},
		categories:  []string{"datetime"},
		examples: []string{
			"2024-01-01T14:30:45Z",
			"2023-12-25T00:00:00Z",
			"2024-06-15T23:59:59Z",
			"2024-01-01T14:30:45.123Z",
			"2024-01-01T14:30:45.1Z",
			"2024-01-01T14:30:45.12Z",
			"2024-01-01T14:30:45+05:30",
			"2024-01-01T14:30:45-08:00",
			"2024-01-01T14:30:45.123+02:00",
		},
		negatives: []string{
			"2024-01-01 14:30:45Z",
			"2024-01-01T14:30:45",
			"2024-01-01T25:30:45Z",
			"2024-01-01T14:60:45Z",
			"2024-01-01T14:30:60Z",
			"2024-01-01T14:30:45.1234Z",
			"2024-01-01T14:30:45+25:00",
		},
	},
	{
		id:          "builtin.time_24h",
		name:        "Time (24-hour)",
		description: "HH:MM from 00:00 to 23:59",
		pattern:     Time24Hour,
		keywords:    []string{":"},
		categories:  []string{"datetime"},
		examples: []string{
			"00:00",
			"12:30",
			"23:59",
			"01:15",
			"18:45",
		},
		negatives: []string{
			"24:00",
			"12:60",
			"1:30",
			"12:3",
			"12:30:45",
		},
	},
	{
		id:          "builtin.time_12h",
		name:        "Time (12-hour)",
		description: "h:MM or hh:MM followed by AM or PM",
		pattern:     Time12Hour,
		keywords:    []string{"am", "pm"},
		categories:  []string{"datetime"},
		examples: []string{
			"12:30AM",
			"12:30PM",
			"1:15am",
			"11:45pm",
			"12:00 AM",
			"6:30 PM",
		},
		negatives: []string{
			"13:30PM",
			"12:60AM",
			"12:30",
			"12:30XM",
		},
	},
	{
		id:          "builtin.zip_us",
		name:        "US ZIP Code",
		description: "Five-digit ZIP code with optional +4 extension",
		pattern:     ZipCode,
		categories:  []string{"contact"},
		examples: []string{
			"12345",
			"90210",
			"12345-6789",
			"00501",
			"99950-0077",
		},
		negatives: []string{
			"1234",
			"123456",
			"12345-678",
			"12345-67890",
			"abcde",
			"12345_6789",
		},
	},
	{
		id:          "builtin.ssn_us",
		name:        "US Social Security Number",
		description: "XXX-XX-XXXX",
		pattern:     SSN,
		keywords:    []string{"-"},
		categories:  []string{"identity"},
		examples: []string{
			"123-45-6789",
			"000-12-3456",
			"999-99-9999",
		},
		negatives: []string{
			"123456789",
			"123-456-789",
			"12-45-6789",
			"123-4-6789",
			"123-45-678",
			"abc-de-fghi",
			"123_45_6789",
		},
	},
	{
		id:          "builtin.mac_address",
		name:        "MAC Address",
		description: "Six hex pairs separated by colons or dashes",
		pattern:     MacAddress,
		keywords:    []string{":", "-"},
		categories:  []string{"network"},
		examples: []string{
			"00:1B:44:11:3A:B7",
			"aa:bb:cc:dd:ee:ff",
			"AA:BB:CC:DD:EE:FF",
			"12-34-56-78-9A-BC",
			"00-00-00-00-00-00",
			"FF-FF-FF-FF-FF-FF",
		},
		negatives: []string{
			"00:1B:44:11:3A",
			"00:1B:44:11:3A:B7:CC",
			"00_1B_44_11_3A_B7",
			"GG:1B:44:11:3A:B7",
			"00:1B:44:11:3A:B",
			"00:1B-44:11:3A:B7",
		},
	},
}

// Builtin returns a definition for every built-in pattern. Each call returns
// fresh definitions the caller may modify.
func Builtin() []*types.Definition {
	defs := make([]*types.Definition, 0, len(builtins))
	for _, b := range builtins {
		defs = append(defs, b.definition())
	}
	return defs
}

// Lookup returns the built-in definition with the given ID.
func Lookup(id string) (*types.Definition, bool) {
	for _, b := range builtins {
		if b.id == id {
			return b.definition(), true
		}
	}
	return nil, false
}

func (b builtin) definition() *types.Definition {
	d := types.NewDefinition(b.id, b.name, rejigs.Create().Apply(b.pattern))
	d.Description = b.description
	d.Keywords = append([]string(nil), b.keywords...)
	d.Categories = append([]string(nil), b.categories...)
	d.Examples = append([]string(nil), b.examples...)
	d.NegativeExamples = append([]string(nil), b.negatives...)
	return d
}
