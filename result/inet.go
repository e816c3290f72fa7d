package result

import "net/netip"

// DecodeInet reads the INET wire layout [family, prefix_bits, is_cidr,
// addr_len, addr[addr_len]]. The server may send either the 8-byte IPv4
// shape (addr_len=4) or the 20-byte IPv6 shape (addr_len=16); both
// canonicalize to the same 16-byte ::ffff:0:0/96-mapped netip.Addr the
// encode side always produces, so a server-sent IPv4 column round-trips to
// the identical value an encode->decode of the same address would. Any
// other length leaves the zero value untouched, matching the "value
// untouched" contract a caller is expected to detect via GetIsNull/Verify
// rather than a returned error.
func DecodeInet(h ResultHandle, row, col int) netip.Addr {
	v := h.GetValue(row, col)
	if len(v) < 4 {
		return netip.Addr{}
	}
	addrLen := int(v[3])
	if len(v) != 4+addrLen {
		return netip.Addr{}
	}

	switch addrLen {
	case 4:
		b := [16]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0xFF, v[4], v[5], v[6], v[7]}
		return netip.AddrFrom16(b)
	case 16:
		var b [16]byte
		copy(b[:], v[4:20])
		return netip.AddrFrom16(b)
	default:
		return netip.Addr{}
	}
}
