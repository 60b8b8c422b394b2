package geoip

import (
	"encoding/binary"
	"net"
)

// ipV4ToInt - ip v4 to the network byte order int of the native calls
func ipV4ToInt(ip net.IP) uint32 {
	if len(ip) == 16 {
		return binary.BigEndian.Uint32(ip[12:16])
	}
	return binary.BigEndian.Uint32(ip)
}

// ipV6ToBytes - ip v6 to the 16 byte big endian buffer of the native
// calls; each address group is written high byte first, in group order
func ipV6ToBytes(ip net.IP) [16]byte {
	var buf [16]byte
	copy(buf[:], ip.To16())
	return buf
}
