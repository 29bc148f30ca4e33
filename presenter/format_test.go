package presenter

import "testing"

func TestSizeOf(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{512, "512"},
		{1023, "1023"},
		{-512, "-512"},
		{1024, "1k"},
		{1536, "2k"},
		{2560, "2k"},
		{100 * 1024, "100k"},
		{1048575, "1024k"},
		{1048576, "1.0M"},
		{5.5 * 1024 * 1024, "5.5M"},
		{1073741824, "1.0G"},
		{1 << 40, "1.0T"},
		{3 << 40, "3.0T"},
		{2048 << 40, "2048.0T"},
	}

	for _, tc := range cases {
		if got := SizeOf(tc.in); got != tc.want {
			t.Fatalf("SizeOf(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
