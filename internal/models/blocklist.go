package models

import (
	"fmt"
	"net/netip"
)

// Blocklist is an immutable set of denied network addresses. It is built
// once from configuration at startup and is safe for concurrent reads.
type Blocklist struct {
	prefixes []netip.Prefix
}

// NewBlocklist parses a list of IP addresses and CIDR ranges. Single
// addresses become single-address prefixes.
func NewBlocklist(addresses []string) (*Blocklist, error) {
	prefixes := make([]netip.Prefix, 0, len(addresses))

	for _, entry := range addresses {
		if addr, err := netip.ParseAddr(entry); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}

		prefix, err := netip.ParsePrefix(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid blocklist entry %q: %w", entry, err)
		}
		prefixes = append(prefixes, prefix.Masked())
	}

	return &Blocklist{prefixes: prefixes}, nil
}

func (b *Blocklist) Contains(addr netip.Addr) bool {
	for _, prefix := range b.prefixes {
		if prefix.Contains(addr.Unmap()) {
			return true
		}
	}
	return false
}

func (b *Blocklist) Len() int {
	return len(b.prefixes)
}
