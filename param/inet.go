package param

import (
	"fmt"
	"net"

	"github.com/sadyrov/pgwirecodec/pgtype"
)

// Inet is the INET parameter encoder. It always sends the address as IPv6:
// an IPv4 address is mapped to ::ffff:0:0/96 on the wire. Layout:
// [family=3, prefix=128, is_cidr=0, addr_len=16, addr[16]] — 20 bytes total.
type Inet struct {
	data [20]byte
}

// NewInet returns an Inet encoding v. It panics if v is not a valid IPv4 or
// IPv6 address — an invalid net.IP is a programming error at the call site.
func NewInet(v net.IP) *Inet {
	i := &Inet{}
	i.Set(v)
	return i
}

// Set re-encodes the parameter from v.
func (i *Inet) Set(v net.IP) {
	addr := v.To16()
	if addr == nil {
		panic(fmt.Sprintf("param: %v is not a valid IPv4 or IPv6 address", v))
	}

	i.data[0] = pgtype.AFInet6
	i.data[1] = 128
	i.data[2] = 0
	i.data[3] = 16
	copy(i.data[4:], addr)
}

func (i *Inet) OID() uint32  { return pgtype.OIDOf[pgtype.KindInet] }
func (i *Inet) Data() []byte { return i.data[:] }
func (i *Inet) Size() int32  { return 20 }
