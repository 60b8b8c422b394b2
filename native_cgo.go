//go:build cgo
// +build cgo

package geoip

/*
#cgo LDFLAGS: -lGeoIP

#include <stdlib.h>
#include <string.h>
#include <netinet/in.h>

// Declarations mirroring GeoIP.h / GeoIPCity.h so that building the
// binding only needs the shared library, not the development headers.
// The GeoIPRecord field order and widths must stay bit-for-bit
// identical to the library's own definition.

typedef struct GeoIPTag GeoIP;

typedef struct GeoIPRecordTag {
	char  *country_code;
	char  *country_code3;
	char  *country_name;
	char  *region;
	char  *city;
	char  *postal_code;
	float  latitude;
	float  longitude;
	int    dma_code;
	int    area_code;
	int    charset;
	char  *continent_code;
	int    netmask;
} GeoIPRecord;

typedef struct GeoIPLookup {
	int netmask;
} GeoIPLookup;

GeoIP *GeoIP_open(const char *filename, int flags);
GeoIP *GeoIP_open_type(int type, int flags);
void GeoIP_delete(GeoIP *gi);
int GeoIP_set_charset(GeoIP *gi, int charset);
char *GeoIP_database_info(GeoIP *gi);

GeoIPRecord *GeoIP_record_by_ipnum(GeoIP *gi, unsigned long ipnum);
GeoIPRecord *GeoIP_record_by_ipnum_v6(GeoIP *gi, struct in6_addr ipnum);
GeoIPRecord *GeoIP_record_by_name(GeoIP *gi, const char *host);
GeoIPRecord *GeoIP_record_by_name_v6(GeoIP *gi, const char *host);
void GeoIPRecord_delete(GeoIPRecord *gir);

char *GeoIP_name_by_ipnum_gl(GeoIP *gi, unsigned long ipnum, GeoIPLookup *gl);
char *GeoIP_name_by_ipnum_v6_gl(GeoIP *gi, struct in6_addr ipnum, GeoIPLookup *gl);

const char *GeoIP_region_name_by_code(const char *country_code, const char *region_code);
const char *GeoIP_time_zone_by_country_and_region(const char *country_code, const char *region_code);

// The v6 entry points take the address struct by value; these shims
// rebuild it from the raw 16-byte buffer handed over from Go.
static GeoIPRecord *go_record_by_in6(GeoIP *gi, const void *buf) {
	struct in6_addr a;
	memcpy(&a, buf, sizeof a);
	return GeoIP_record_by_ipnum_v6(gi, a);
}

static char *go_name_by_in6(GeoIP *gi, const void *buf, GeoIPLookup *gl) {
	struct in6_addr a;
	memcpy(&a, buf, sizeof a);
	return GeoIP_name_by_ipnum_v6_gl(gi, a, gl);
}
*/
import "C"

import "unsafe"

// nativeAPI is the library binding used by the exported open calls.
var nativeAPI nativeLib = cgoLib{}

type cgoLib struct{}

type cgoDB struct {
	g *C.GeoIP
}

type cgoRecord struct {
	r *C.GeoIPRecord
}

func (rec cgoRecord) fields() rawRecord {
	r := rec.r
	return rawRecord{
		countryCode:   cText(r.country_code),
		countryCode3:  cText(r.country_code3),
		countryName:   cText(r.country_name),
		region:        cText(r.region),
		city:          cText(r.city),
		postalCode:    cText(r.postal_code),
		latitude:      float32(r.latitude),
		longitude:     float32(r.longitude),
		dmaCode:       int(r.dma_code),
		areaCode:      int(r.area_code),
		charset:       int(r.charset),
		continentCode: cText(r.continent_code),
		netmask:       int(r.netmask),
	}
}

// cText copies a native C string; nil stays nil.
func cText(p *C.char) []byte {
	if p == nil {
		return nil
	}
	return []byte(C.GoString(p))
}

func (cgoLib) openPath(path string, flags int) nativeDB {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	g := C.GeoIP_open(cs, C.int(flags))
	if g == nil {
		return nil
	}
	return cgoDB{g: g}
}

func (cgoLib) openType(edition int, flags int) nativeDB {
	g := C.GeoIP_open_type(C.int(edition), C.int(flags))
	if g == nil {
		return nil
	}
	return cgoDB{g: g}
}

func (cgoLib) closeDB(db nativeDB) {
	C.GeoIP_delete(db.(cgoDB).g)
}

func (cgoLib) setCharset(db nativeDB, charset int) int {
	return int(C.GeoIP_set_charset(db.(cgoDB).g, C.int(charset)))
}

func (cgoLib) recordByIPv4(db nativeDB, ipnum uint32) nativeRecord {
	r := C.GeoIP_record_by_ipnum(db.(cgoDB).g, C.ulong(ipnum))
	if r == nil {
		return nil
	}
	return cgoRecord{r: r}
}

func (cgoLib) recordByIPv6(db nativeDB, addr [16]byte) nativeRecord {
	r := C.go_record_by_in6(db.(cgoDB).g, unsafe.Pointer(&addr[0]))
	if r == nil {
		return nil
	}
	return cgoRecord{r: r}
}

func (cgoLib) recordByNameV4(db nativeDB, host string) nativeRecord {
	cs := C.CString(host)
	defer C.free(unsafe.Pointer(cs))
	r := C.GeoIP_record_by_name(db.(cgoDB).g, cs)
	if r == nil {
		return nil
	}
	return cgoRecord{r: r}
}

func (cgoLib) recordByNameV6(db nativeDB, host string) nativeRecord {
	cs := C.CString(host)
	defer C.free(unsafe.Pointer(cs))
	r := C.GeoIP_record_by_name_v6(db.(cgoDB).g, cs)
	if r == nil {
		return nil
	}
	return cgoRecord{r: r}
}

func (cgoLib) releaseRecord(rec nativeRecord) {
	C.GeoIPRecord_delete(rec.(cgoRecord).r)
}

func (cgoLib) nameByIPv4(db nativeDB, ipnum uint32) ([]byte, int) {
	var gl C.GeoIPLookup
	p := C.GeoIP_name_by_ipnum_gl(db.(cgoDB).g, C.ulong(ipnum), &gl)
	if p == nil {
		return nil, 0
	}
	text := []byte(C.GoString(p))
	C.free(unsafe.Pointer(p))
	return text, int(gl.netmask)
}

func (cgoLib) nameByIPv6(db nativeDB, addr [16]byte) ([]byte, int) {
	var gl C.GeoIPLookup
	p := C.go_name_by_in6(db.(cgoDB).g, unsafe.Pointer(&addr[0]), &gl)
	if p == nil {
		return nil, 0
	}
	text := []byte(C.GoString(p))
	C.free(unsafe.Pointer(p))
	return text, int(gl.netmask)
}

func (cgoLib) databaseInfo(db nativeDB) []byte {
	p := C.GeoIP_database_info(db.(cgoDB).g)
	if p == nil {
		return nil
	}
	// The info buffer is heap allocated by the library and belongs to
	// the generic allocator, unlike lookup records.
	text := []byte(C.GoString(p))
	C.free(unsafe.Pointer(p))
	return text
}

func (cgoLib) regionName(countryCode, regionCode string) []byte {
	cc := C.CString(countryCode)
	defer C.free(unsafe.Pointer(cc))
	rc := C.CString(regionCode)
	defer C.free(unsafe.Pointer(rc))
	return cText(C.GeoIP_region_name_by_code(cc, rc))
}

func (cgoLib) timeZone(countryCode, regionCode string) []byte {
	cc := C.CString(countryCode)
	defer C.free(unsafe.Pointer(cc))
	rc := C.CString(regionCode)
	defer C.free(unsafe.Pointer(rc))
	return cText(C.GeoIP_time_zone_by_country_and_region(cc, rc))
}
