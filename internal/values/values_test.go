package values

import "testing"

/**
 * Test memory size parsing and byte expansion
 */
func TestParseMemory(t *testing.T) {
	cases := []struct {
		in    string
		bytes int64
	}{
		{"1024", 1024},
		{"2K", 2 * 1024},
		{"512M", 512 * 1024 * 1024},
		{"2G", 2 * 1024 * 1024 * 1024},
		{"1T", 1024 * 1024 * 1024 * 1024},
	}
	for _, tc := range cases {
		m, err := ParseMemory(tc.in)
		if err != nil {
			t.Errorf("ParseMemory(%q) failed: %v", tc.in, err)
			continue
		}
		if m.Bytes() != tc.bytes {
			t.Errorf("ParseMemory(%q).Bytes() = %d, want %d", tc.in, m.Bytes(), tc.bytes)
		}
		if m.String() != tc.in {
			t.Errorf("round trip of %q gave %q", tc.in, m.String())
		}
	}

	for _, bad := range []string{"", "G", "2.5G", "2GB", "-1K"} {
		if _, err := ParseMemory(bad); err == nil {
			t.Errorf("ParseMemory(%q) accepted", bad)
		}
	}
}

/**
 * Test CIDR parsing
 * @description
 * - The lexical gate lets "999.999.999.999/99" through for external
 *   compatibility, but the typed parse enforces octet and prefix ranges
 */
func TestParseCIDR(t *testing.T) {
	c, err := ParseCIDR("192.168.1.0/24")
	if err != nil {
		t.Fatalf("ParseCIDR failed: %v", err)
	}
	if c.Address != [4]byte{192, 168, 1, 0} || c.PrefixLen != 24 {
		t.Errorf("unexpected parse result: %+v", c)
	}
	if c.String() != "192.168.1.0/24" {
		t.Errorf("round trip gave %q", c.String())
	}

	if !IsNetworkString("999.999.999.999/99") {
		t.Error("lexical gate tightened: 999.999.999.999/99 should pass the shape check")
	}
	if _, err := ParseCIDR("999.999.999.999/99"); err == nil {
		t.Error("typed parse accepted out-of-range octets")
	}
	if _, err := ParseCIDR("10.0.0.0/33"); err == nil {
		t.Error("typed parse accepted prefix length 33")
	}
	if _, err := ParseCIDR("10.0.0/8"); err == nil {
		t.Error("typed parse accepted a three-octet address")
	}
}

/**
 * Test schedule parsing into literal and cron forms
 */
func TestParseSchedule(t *testing.T) {
	s, err := ParseSchedule("daily")
	if err != nil {
		t.Fatalf("ParseSchedule(daily) failed: %v", err)
	}
	if s.Literal != "daily" || s.Cron != "" {
		t.Errorf("unexpected literal parse: %+v", s)
	}

	s, err = ParseSchedule("30 3 * * 1")
	if err != nil {
		t.Fatalf("ParseSchedule(cron) failed: %v", err)
	}
	if s.Cron != "30 3 * * 1" || s.Literal != "" {
		t.Errorf("unexpected cron parse: %+v", s)
	}
	if s.String() != "30 3 * * 1" {
		t.Errorf("round trip gave %q", s.String())
	}

	if _, err := ParseSchedule("every tuesday"); err == nil {
		t.Error("ParseSchedule accepted free text")
	}
	if _, err := ParseSchedule("* * * *"); err == nil {
		t.Error("ParseSchedule accepted a 4-field expression")
	}
}
