// Package values parses the string-encoded structured values used in the
// settings tree (memory sizes, CIDR networks, schedules) into small typed
// forms. The string form stays the external serialization; the regexp
// gates below are the compatibility surface and are deliberately lexical,
// not semantic.
package values

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	memoryPattern  = regexp.MustCompile(`^[0-9]+(K|M|G|T)?$`)
	networkPattern = regexp.MustCompile(`^([0-9]{1,3}\.){3}[0-9]{1,3}/[0-9]{1,2}$`)
	cronPattern    = regexp.MustCompile(`^[0-9*,\-/ ]+$`)
)

/**
 * MemoryUnit is the optional suffix of a memory size string.
 */
type MemoryUnit string

const (
	UnitBytes MemoryUnit = ""
	UnitKilo  MemoryUnit = "K"
	UnitMega  MemoryUnit = "M"
	UnitGiga  MemoryUnit = "G"
	UnitTera  MemoryUnit = "T"
)

/**
 * MemorySize is a parsed memory size such as "512M" or "2G".
 */
type MemorySize struct {
	Magnitude int64
	Unit      MemoryUnit
}

func (m MemorySize) String() string {
	return fmt.Sprintf("%d%s", m.Magnitude, m.Unit)
}

/**
 * Bytes returns the size expanded to a byte count.
 */
func (m MemorySize) Bytes() int64 {
	factor := int64(1)
	switch m.Unit {
	case UnitKilo:
		factor = 1 << 10
	case UnitMega:
		factor = 1 << 20
	case UnitGiga:
		factor = 1 << 30
	case UnitTera:
		factor = 1 << 40
	}
	return m.Magnitude * factor
}

/**
 * IsMemoryString reports whether the string has the accepted lexical
 * shape. This is the check the option validator applies.
 */
func IsMemoryString(s string) bool {
	return memoryPattern.MatchString(s)
}

/**
 * ParseMemory parses a memory size string.
 * @param {string} s - String like "512M", "2G", "1024"
 * @returns {MemorySize, error} Parsed size or a shape error
 */
func ParseMemory(s string) (MemorySize, error) {
	if !memoryPattern.MatchString(s) {
		return MemorySize{}, fmt.Errorf("invalid memory size %q (expected digits with optional K/M/G/T suffix)", s)
	}
	unit := UnitBytes
	digits := s
	switch last := s[len(s)-1]; last {
	case 'K', 'M', 'G', 'T':
		unit = MemoryUnit(last)
		digits = s[:len(s)-1]
	}
	magnitude, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return MemorySize{}, fmt.Errorf("invalid memory magnitude %q: %w", digits, err)
	}
	return MemorySize{Magnitude: magnitude, Unit: unit}, nil
}

/**
 * CIDR is a parsed IPv4 network in prefix notation.
 */
type CIDR struct {
	Address   [4]byte
	PrefixLen int
}

func (c CIDR) String() string {
	return fmt.Sprintf("%d.%d.%d.%d/%d", c.Address[0], c.Address[1], c.Address[2], c.Address[3], c.PrefixLen)
}

/**
 * IsNetworkString reports whether the string has the accepted dotted-quad
 * prefix shape. Octet and prefix ranges are not checked here; this mirrors
 * the external representation's lexical contract.
 */
func IsNetworkString(s string) bool {
	return networkPattern.MatchString(s)
}

/**
 * ParseCIDR parses an IPv4 prefix string into its typed form. Unlike the
 * lexical gate, the typed parse does enforce octet and prefix ranges, so
 * internal consumers never see a nonsense network.
 * @param {string} s - String like "192.168.1.0/24"
 * @returns {CIDR, error} Parsed network or a range/shape error
 */
func ParseCIDR(s string) (CIDR, error) {
	if !networkPattern.MatchString(s) {
		return CIDR{}, fmt.Errorf("invalid network %q (expected a.b.c.d/len)", s)
	}
	slash := strings.IndexByte(s, '/')
	octets := strings.Split(s[:slash], ".")
	var cidr CIDR
	for i, part := range octets {
		n, err := strconv.Atoi(part)
		if err != nil || n > 255 {
			return CIDR{}, fmt.Errorf("invalid network %q: octet %q out of range", s, part)
		}
		cidr.Address[i] = byte(n)
	}
	prefix, err := strconv.Atoi(s[slash+1:])
	if err != nil || prefix > 32 {
		return CIDR{}, fmt.Errorf("invalid network %q: prefix length out of range", s)
	}
	cidr.PrefixLen = prefix
	return cidr, nil
}

/**
 * ScheduleLiterals is the fixed set of schedule shorthands.
 */
var ScheduleLiterals = []string{"minutely", "hourly", "daily", "weekly", "monthly", "yearly"}

/**
 * Schedule is a parsed maintenance schedule: either one of the fixed
 * literals or a 5-field cron expression kept verbatim.
 */
type Schedule struct {
	Literal string
	Cron    string
}

func (s Schedule) String() string {
	if s.Literal != "" {
		return s.Literal
	}
	return s.Cron
}

/**
 * IsScheduleString reports whether the string is a schedule literal or has
 * the cron-like lexical shape (five whitespace-separated fields drawn from
 * digits, '*', ',', '-', '/'). Field ranges are not checked; "99 * * * *"
 * passes. Syntactic, not semantic.
 */
func IsScheduleString(s string) bool {
	for _, lit := range ScheduleLiterals {
		if s == lit {
			return true
		}
	}
	if !cronPattern.MatchString(s) {
		return false
	}
	return len(strings.Fields(s)) == 5
}

/**
 * ParseSchedule parses a schedule string.
 */
func ParseSchedule(s string) (Schedule, error) {
	if !IsScheduleString(s) {
		return Schedule{}, fmt.Errorf("invalid schedule %q (expected %s or a 5-field cron expression)",
			s, strings.Join(ScheduleLiterals, "/"))
	}
	for _, lit := range ScheduleLiterals {
		if s == lit {
			return Schedule{Literal: lit}, nil
		}
	}
	return Schedule{Cron: s}, nil
}
