// Package geoip is a binding to the legacy GeoIP library. It wraps
// the native database engine behind an idiomatic API: lookups return
// owned Go values, native allocations are copied out and released
// before a call returns, and the one native entry point that is not
// safe to run concurrently is serialized process-wide.
package geoip

import (
	"net"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// ---------------- PUBLIC BLOCK ----------------

// GeoIP - handle over one opened native database resource.
//
// A handle may be shared between goroutines for lookups; the native
// read paths are assumed reentrant once a database is open. Close
// releases the native resource and must be the last call on a handle.
type GeoIP struct {
	lib nativeLib
	db  nativeDB
}

// Open - factory method for a handle over the database file at path
func Open(path string, options Options) (*GeoIP, error) {
	return openPath(nativeAPI, path, options)
}

// OpenType - factory method for a handle over the installed database
// of the given edition
func OpenType(dbType DBType, options Options) (*GeoIP, error) {
	return openType(nativeAPI, dbType, options)
}

// GetRecord - method for getting the city record for an ip address.
// A nil record means the database has no data for the address.
func (g *GeoIP) GetRecord(ip net.IP) *CityInfo {
	var rec nativeRecord
	if v4 := ip.To4(); v4 != nil {
		rec = g.lib.recordByIPv4(g.db, ipV4ToInt(v4))
	} else if ip.To16() != nil {
		rec = g.lib.recordByIPv6(g.db, ipV6ToBytes(ip))
	}
	return g.copyRecord(rec)
}

// GetRecordByName - city record lookup by host name. The ip v6
// capable entry point is tried first, then the ip v4 one.
func (g *GeoIP) GetRecordByName(host string) *CityInfo {
	rec := g.lib.recordByNameV6(g.db, host)
	if rec == nil {
		rec = g.lib.recordByNameV4(g.db, host)
	}
	return g.copyRecord(rec)
}

// GetASInfo - autonomous system lookup for an ip address. A nil
// result means the address is unmapped or the description returned by
// the database could not be parsed.
func (g *GeoIP) GetASInfo(ip net.IP) *ASInfo {
	var (
		text    []byte
		netmask int
	)
	if v4 := ip.To4(); v4 != nil {
		text, netmask = g.lib.nameByIPv4(g.db, ipV4ToInt(v4))
	} else if ip.To16() != nil {
		text, netmask = g.lib.nameByIPv6(g.db, ipV6ToBytes(ip))
	}
	description := maybeString(text)
	if description == nil {
		return nil
	}
	return parseASDescription(*description, netmask)
}

// Info - build/version string of the opened database
func (g *GeoIP) Info() (string, error) {
	buf := g.lib.databaseInfo(g.db)
	if buf == nil {
		return "", &InfoError{Err: ErrNoInfo}
	}
	if !utf8.Valid(buf) {
		return "", &InfoError{Err: ErrBadEncoding}
	}
	return string(buf), nil
}

// Close - releases the native database resource. Close is idempotent;
// lookups must not be issued after it.
func (g *GeoIP) Close() {
	if g.db != nil {
		g.lib.closeDB(g.db)
		g.db = nil
	}
}

// RegionNameByCode - region name from the native built-in static
// table; ok is false for unrecognized codes
func RegionNameByCode(countryCode, regionCode string) (string, bool) {
	return staticText(nativeAPI.regionName(countryCode, regionCode))
}

// TimeZoneByCountryAndRegion - timezone name from the native built-in
// static table; ok is false for unrecognized codes
func TimeZoneByCountryAndRegion(countryCode, regionCode string) (string, bool) {
	return staticText(nativeAPI.timeZone(countryCode, regionCode))
}

// ---------------- PRIVATE BLOCK ----------------

// openTypeMu serializes the open-by-type native call, which mutates
// hidden global state inside the library. The critical section covers
// the open and the charset call that follows it, nothing else.
var openTypeMu sync.Mutex

func openPath(lib nativeLib, path string, options Options) (*GeoIP, error) {
	if strings.ContainsRune(path, 0) {
		return nil, &OpenError{Path: path, Err: ErrInvalidPath}
	}
	db := lib.openPath(path, int(options))
	if db == nil {
		return nil, &OpenError{Path: path, Err: ErrOpenFailed}
	}
	if lib.setCharset(db, charsetUTF8) != 0 {
		lib.closeDB(db)
		return nil, &OpenError{Path: path, Err: ErrCharset}
	}
	return &GeoIP{lib: lib, db: db}, nil
}

func openType(lib nativeLib, dbType DBType, options Options) (*GeoIP, error) {
	openTypeMu.Lock()
	defer openTypeMu.Unlock()
	db := lib.openType(int(dbType), int(options))
	if db == nil {
		return nil, &TypeOpenError{Type: dbType, Err: ErrOpenFailed}
	}
	if lib.setCharset(db, charsetUTF8) != 0 {
		lib.closeDB(db)
		return nil, &TypeOpenError{Type: dbType, Err: ErrCharset}
	}
	return &GeoIP{lib: lib, db: db}, nil
}

// copyRecord - copies a native record into an owned value and then
// releases the native allocation. The copy must complete before the
// release, and the record is never touched again afterwards.
func (g *GeoIP) copyRecord(rec nativeRecord) *CityInfo {
	if rec == nil {
		return nil
	}
	info := newCityInfo(rec.fields())
	g.lib.releaseRecord(rec)
	return info
}

// parseASDescription - parses the "AS<number> <name>" description
// returned by the native name lookup. A missing AS prefix or an
// unparseable number means no result, not a partial one.
func parseASDescription(description string, netmask int) *ASInfo {
	if !strings.HasPrefix(description, "AS") {
		return nil
	}
	parts := strings.SplitN(description, " ", 2)
	asn, err := strconv.ParseUint(parts[0][2:], 10, 32)
	if err != nil {
		return nil
	}
	name := "(none)"
	if len(parts) == 2 {
		name = parts[1]
	}
	return &ASInfo{ASN: uint32(asn), Name: name, Netmask: netmask}
}

func staticText(b []byte) (string, bool) {
	s := maybeString(b)
	if s == nil {
		return "", false
	}
	return *s, true
}
