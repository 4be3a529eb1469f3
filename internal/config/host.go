package config

import "net/netip"

// ValidHostIP accepts only literal addresses that print back unchanged.
// Host names and non-canonical spellings such as "01.2.3.4" are rejected.
func ValidHostIP(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	return err == nil && addr.String() == ip
}
