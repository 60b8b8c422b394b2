//go:build !cgo
// +build !cgo

package geoip

// Without cgo there is no native library to bind, so every open fails
// and the static tables are empty. Keeping this stub lets the package
// compile in CGO_ENABLED=0 builds.
var nativeAPI nativeLib = unavailableLib{}

type unavailableLib struct{}

func (unavailableLib) openPath(path string, flags int) nativeDB      { return nil }
func (unavailableLib) openType(edition int, flags int) nativeDB      { return nil }
func (unavailableLib) closeDB(db nativeDB)                           {}
func (unavailableLib) setCharset(db nativeDB, charset int) int       { return -1 }
func (unavailableLib) recordByIPv4(nativeDB, uint32) nativeRecord    { return nil }
func (unavailableLib) recordByIPv6(nativeDB, [16]byte) nativeRecord  { return nil }
func (unavailableLib) recordByNameV4(nativeDB, string) nativeRecord  { return nil }
func (unavailableLib) recordByNameV6(nativeDB, string) nativeRecord  { return nil }
func (unavailableLib) releaseRecord(nativeRecord)                    {}
func (unavailableLib) nameByIPv4(nativeDB, uint32) ([]byte, int)     { return nil, 0 }
func (unavailableLib) nameByIPv6(nativeDB, [16]byte) ([]byte, int)   { return nil, 0 }
func (unavailableLib) databaseInfo(nativeDB) []byte                  { return nil }
func (unavailableLib) regionName(country, region string) []byte      { return nil }
func (unavailableLib) timeZone(country, region string) []byte        { return nil }
