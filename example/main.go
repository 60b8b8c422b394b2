package main

import (
	"fmt"
	"net"

	geoip "github.com/jedisct1/go-geoip"
)

func main() {
	ipv4 := net.ParseIP("8.8.8.8")
	ipv6 := net.ParseIP("2001:4860:4860::8888")

	city, err := geoip.Open("/opt/geoip/GeoLiteCity.dat", geoip.MemoryCache)
	if err != nil {
		panic(err)
	}
	defer city.Close()

	if info, err := city.Info(); err == nil {
		fmt.Println(info)
	}

	// ip v4
	if rec := city.GetRecord(ipv4); rec != nil && rec.City != nil {
		fmt.Println(*rec.City)
	}

	// ip v6
	if rec := city.GetRecord(ipv6); rec != nil && rec.CountryCode != nil {
		fmt.Println(*rec.CountryCode)
	}

	asn, err := geoip.Open("/opt/geoip/GeoIPASNum.dat", geoip.MemoryCache)
	if err != nil {
		panic(err)
	}
	defer asn.Close()

	if as := asn.GetASInfo(ipv4); as != nil {
		fmt.Printf("AS%d %s (netmask /%d)\n", as.ASN, as.Name, as.Netmask)
	}

	if name, ok := geoip.RegionNameByCode("US", "CA"); ok {
		fmt.Println(name)
	}
	if tz, ok := geoip.TimeZoneByCountryAndRegion("US", "CA"); ok {
		fmt.Println(tz)
	}
}
