package geoip

// rawRecord mirrors the field layout of the native GeoIPRecord
// structure after copying. Text fields are byte slices so that a nil
// slice can stand for a null pointer in the native record; the bytes
// are not yet validated as UTF-8 at this level.
type rawRecord struct {
	countryCode   []byte
	countryCode3  []byte
	countryName   []byte
	region        []byte
	city          []byte
	postalCode    []byte
	latitude      float32
	longitude     float32
	dmaCode       int
	areaCode      int
	charset       int
	continentCode []byte
	netmask       int
}

// nativeDB is an opened native database resource. The zero value is
// never a valid handle.
type nativeDB interface{}

// nativeRecord is one natively allocated lookup record. It stays
// owned by the native library until released through releaseRecord,
// which must happen exactly once per record.
type nativeRecord interface {
	// fields copies every record field out of native memory. It must
	// not be called after the record has been released.
	fields() rawRecord
}

// nativeLib is the fixed entry-point surface of the native GeoIP
// library. The real implementation binds libGeoIP through cgo; tests
// substitute an instrumented fake.
//
// Calls returning a nativeRecord hand ownership of the record to the
// caller. Calls returning byte slices (name, info, region, timezone)
// copy and, where the native contract requires it, free the native
// buffer internally; a nil slice means the native call returned null.
type nativeLib interface {
	// openPath opens a database file. A nil handle means the native
	// open failed.
	openPath(path string, flags int) nativeDB

	// openType opens the installed database for an edition code. It
	// mutates hidden global state in the native library and must not
	// be entered concurrently.
	openType(edition int, flags int) nativeDB

	// closeDB releases an opened database resource.
	closeDB(db nativeDB)

	// setCharset configures the text charset of subsequent lookups.
	// Zero is success.
	setCharset(db nativeDB, charset int) int

	recordByIPv4(db nativeDB, ipnum uint32) nativeRecord
	recordByIPv6(db nativeDB, addr [16]byte) nativeRecord
	recordByNameV4(db nativeDB, host string) nativeRecord
	recordByNameV6(db nativeDB, host string) nativeRecord
	releaseRecord(rec nativeRecord)

	// nameByIPv4 and nameByIPv6 resolve the description string for an
	// address and report the matched netmask through the lookup
	// context of the native call.
	nameByIPv4(db nativeDB, ipnum uint32) ([]byte, int)
	nameByIPv6(db nativeDB, addr [16]byte) ([]byte, int)

	// databaseInfo returns the build/version string of the database.
	// The native buffer is released with the generic allocator free,
	// not the record delete, before this returns.
	databaseInfo(db nativeDB) []byte

	// regionName and timeZone query the native built-in static
	// tables; no database handle is involved.
	regionName(countryCode, regionCode string) []byte
	timeZone(countryCode, regionCode string) []byte
}
