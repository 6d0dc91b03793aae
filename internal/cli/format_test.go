package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{999.994, "$999.99"},
		{1234.56, "$1,235"},
		{1000000, "$1,000,000"},
		{-42, "-$42.00"},
		{-1813, "-$1,813"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoneyDelta(t *testing.T) {
	if got := FormatMoneyDelta(50); got != "+$50.00" {
		t.Errorf("FormatMoneyDelta(50) = %q, want +$50.00", got)
	}
	if got := FormatMoneyDelta(-2194); got != "-$2,194" {
		t.Errorf("FormatMoneyDelta(-2194) = %q, want -$2,194", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(12.345); got != "12.3%" {
		t.Errorf("FormatPercent(12.345) = %q, want 12.3%%", got)
	}
	if got := FormatPercentDelta(-8.21); got != "-8.2%" {
		t.Errorf("FormatPercentDelta(-8.21) = %q, want -8.2%%", got)
	}
	if got := FormatPercentDelta(3.44); got != "+3.4%" {
		t.Errorf("FormatPercentDelta(3.44) = %q, want +3.4%%", got)
	}
}

func TestFormatWeek(t *testing.T) {
	if got := FormatWeek(7); got != "W7" {
		t.Errorf("FormatWeek(7) = %q, want W7", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline(nil); got != "" {
		t.Errorf("RenderSparkline(nil) = %q, want empty", got)
	}

	line := RenderSparkline([]float64{-100, 0, 100})
	runes := []rune(line)
	if len(runes) != 3 {
		t.Fatalf("sparkline length = %d, want 3", len(runes))
	}
	if runes[0] != '▁' {
		t.Errorf("min value rune = %q, want lowest block", runes[0])
	}
	if runes[2] != '█' {
		t.Errorf("max value rune = %q, want highest block", runes[2])
	}
}
