package geoip

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPV4ToInt(t *testing.T) {
	tests := []struct {
		ip   string
		want uint32
	}{
		{"8.8.8.8", 0x08080808},
		{"1.2.3.4", 0x01020304},
		{"255.255.255.255", 0xffffffff},
		{"0.0.0.0", 0x00000000},
		{"192.168.0.1", 0xc0a80001},
	}

	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			// ParseIP yields the 16 byte form; the encoder must accept
			// both that and the packed 4 byte form.
			assert.Equal(t, tt.want, ipV4ToInt(ip))
			assert.Equal(t, tt.want, ipV4ToInt(ip.To4()))
		})
	}
}

func TestIPV6ToBytes(t *testing.T) {
	ip := net.ParseIP("2001:db8:85a3::8a2e:370:7334")
	require.NotNil(t, ip)

	// Each 16 bit group big endian, in group order.
	want := [16]byte{
		0x20, 0x01, 0x0d, 0xb8, 0x85, 0xa3, 0x00, 0x00,
		0x00, 0x00, 0x8a, 0x2e, 0x03, 0x70, 0x73, 0x34,
	}
	assert.Equal(t, want, ipV6ToBytes(ip))

	loopback := ipV6ToBytes(net.ParseIP("::1"))
	assert.Equal(t, byte(1), loopback[15])
	for i := 0; i < 15; i++ {
		assert.Equal(t, byte(0), loopback[i])
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	ip := net.ParseIP("8.8.8.8")
	assert.Equal(t, ipV4ToInt(ip), ipV4ToInt(ip))

	v6 := net.ParseIP("2001:db8::1")
	assert.Equal(t, ipV6ToBytes(v6), ipV6ToBytes(v6))
}
