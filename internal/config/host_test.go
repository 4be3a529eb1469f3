package config

import "testing"

func TestValidHostIP(t *testing.T) {
	t.Parallel()
	tests := []struct {
		ip   string
		want bool
	}{
		{"200.24.34.55", true},
		{"0.0.0.0", true},
		{"::1", true},
		{"2001:db8::1", true},
		{"", false},
		{"example.com", false},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"01.2.3.4", false},
		{" 1.2.3.4", false},
		{"0:0:0:0:0:0:0:1", false},
		{"2001:DB8::1", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			t.Parallel()
			if got := ValidHostIP(tt.ip); got != tt.want {
				t.Errorf("ValidHostIP(%q) = %v, want %v", tt.ip, got, tt.want)
			}
		})
	}
}
