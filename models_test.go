package geoip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeString(t *testing.T) {
	assert.Nil(t, maybeString(nil), "null pointer decodes to absent")

	got := maybeString([]byte("Mountain View"))
	require.NotNil(t, got)
	assert.Equal(t, "Mountain View", *got)

	// Invalid text degrades to absent, it is not an error.
	assert.Nil(t, maybeString([]byte{0xff, 0xfe}))

	// An empty string is present data, unlike a null pointer.
	empty := maybeString([]byte{})
	require.NotNil(t, empty)
	assert.Equal(t, "", *empty)
}

func TestMaybeCode(t *testing.T) {
	assert.Nil(t, maybeCode(0), "zero is the not-applicable sentinel")

	got := maybeCode(650)
	require.NotNil(t, got)
	assert.Equal(t, 650, *got)
}

func TestNewCityInfo(t *testing.T) {
	info := newCityInfo(rawRecord{
		countryCode:   []byte("US"),
		countryCode3:  []byte("USA"),
		countryName:   []byte("United States"),
		city:          []byte("Mountain View"),
		latitude:      37.386,
		longitude:     -122.0838,
		areaCode:      650,
		charset:       charsetUTF8,
		continentCode: []byte("NA"),
		netmask:       24,
	})

	require.NotNil(t, info.CountryCode)
	assert.Equal(t, "US", *info.CountryCode)
	require.NotNil(t, info.City)
	assert.Equal(t, "Mountain View", *info.City)
	assert.Nil(t, info.Region, "null region pointer stays absent")
	assert.Nil(t, info.PostalCode)
	assert.Nil(t, info.DMACode, "zero dma code stays absent")
	require.NotNil(t, info.AreaCode)
	assert.Equal(t, 650, *info.AreaCode)
	assert.Equal(t, float32(37.386), info.Latitude)
	assert.Equal(t, float32(-122.0838), info.Longitude)
	assert.Equal(t, 24, info.Netmask)
}

func TestCityInfoMarshal(t *testing.T) {
	info := newCityInfo(testRecord("Mountain View"))

	data, err := info.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalCityInfo(data)
	require.NoError(t, err)
	assert.Equal(t, info, decoded)
}

func TestASInfoMarshal(t *testing.T) {
	as := &ASInfo{ASN: 41064, Name: "Telefun Ltd", Netmask: 22}

	data, err := as.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalASInfo(data)
	require.NoError(t, err)
	assert.Equal(t, as, decoded)
}
