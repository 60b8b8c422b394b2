package geoip

import (
	"unicode/utf8"

	"github.com/vmihailenco/msgpack"
)

// CityInfo - model for one record lookup result. Text fields and the
// dma/area codes are optional: the underlying database entry may omit
// them, and nil marks an omitted field.
type CityInfo struct {
	CountryCode   *string `msgpack:"country_code"`   // 2 letter country code
	CountryCode3  *string `msgpack:"country_code3"`  // 3 letter country code
	CountryName   *string `msgpack:"country_name"`   // country name
	Region        *string `msgpack:"region"`         // region code
	City          *string `msgpack:"city"`           // city name
	PostalCode    *string `msgpack:"postal_code"`    // postal code
	Latitude      float32 `msgpack:"latitude"`       // latitude
	Longitude     float32 `msgpack:"longitude"`      // longitude
	DMACode       *int    `msgpack:"dma_code"`       // designated market area code
	AreaCode      *int    `msgpack:"area_code"`      // telephone area code
	Charset       int     `msgpack:"charset"`        // charset of the text fields
	ContinentCode *string `msgpack:"continent_code"` // continent code
	Netmask       int     `msgpack:"netmask"`        // prefix length of the matched network
}

// ASInfo - model for one autonomous system lookup result
type ASInfo struct {
	ASN     uint32 `msgpack:"asn"`     // autonomous system number
	Name    string `msgpack:"name"`    // organization name
	Netmask int    `msgpack:"netmask"` // prefix length of the matched network
}

// maybeString - decodes an optional native text field. A nil buffer
// stands for a null pointer and bytes that are not valid UTF-8 decode
// to absent as well, matching the native library semantics.
func maybeString(b []byte) *string {
	if b == nil || !utf8.Valid(b) {
		return nil
	}
	s := string(b)
	return &s
}

// maybeCode - decodes a zero-sentinel numeric field; the native
// library stores zero for "not applicable"
func maybeCode(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}

// newCityInfo - builds an owned CityInfo from the copied fields of a
// native record
func newCityInfo(r rawRecord) *CityInfo {
	return &CityInfo{
		CountryCode:   maybeString(r.countryCode),
		CountryCode3:  maybeString(r.countryCode3),
		CountryName:   maybeString(r.countryName),
		Region:        maybeString(r.region),
		City:          maybeString(r.city),
		PostalCode:    maybeString(r.postalCode),
		Latitude:      r.latitude,
		Longitude:     r.longitude,
		DMACode:       maybeCode(r.dmaCode),
		AreaCode:      maybeCode(r.areaCode),
		Charset:       r.charset,
		ContinentCode: maybeString(r.continentCode),
		Netmask:       r.netmask,
	}
}

// Marshal - serializes the record with msgpack, e.g. for caching or
// transport
func (info *CityInfo) Marshal() ([]byte, error) {
	return msgpack.Marshal(info)
}

// UnmarshalCityInfo - decodes a record produced by Marshal
func UnmarshalCityInfo(data []byte) (*CityInfo, error) {
	info := &CityInfo{}
	if err := msgpack.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}

// Marshal - serializes the record with msgpack
func (info *ASInfo) Marshal() ([]byte, error) {
	return msgpack.Marshal(info)
}

// UnmarshalASInfo - decodes a record produced by Marshal
func UnmarshalASInfo(data []byte) (*ASInfo, error) {
	info := &ASInfo{}
	if err := msgpack.Unmarshal(data, info); err != nil {
		return nil, err
	}
	return info, nil
}
