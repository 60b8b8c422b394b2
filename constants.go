package geoip

// Options selects the caching strategy passed to the native open call.
// The strategies are mutually exclusive.
type Options int

const (
	Standard    Options = 0 // read from disk on every lookup
	MemoryCache Options = 1 // load the whole database into memory
	CheckCache  Options = 2 // reload when the database file changes
	IndexCache  Options = 4 // cache the most frequently accessed index
	MmapCache   Options = 8 // map the database file into memory
)

// DBType identifies a database edition for OpenType. The values are
// the edition codes of the native library and must not be reordered.
type DBType int

const (
	CountryEdition          DBType = 1
	CityEditionRev1         DBType = 2
	RegionEditionRev1       DBType = 3
	ISPEdition              DBType = 4
	ORGEdition              DBType = 5
	CityEditionRev0         DBType = 6
	RegionEditionRev0       DBType = 7
	ProxyEdition            DBType = 8
	ASNumEdition            DBType = 9
	NetSpeedEdition         DBType = 10
	DomainEdition           DBType = 11
	CountryEditionV6        DBType = 12
	LocationAEdition        DBType = 13
	AccuracyRadiusEdition   DBType = 14
	LargeCountryEdition     DBType = 17
	LargeCountryEditionV6   DBType = 18
	ASNumEditionV6          DBType = 21
	ISPEditionV6            DBType = 22
	ORGEditionV6            DBType = 23
	DomainEditionV6         DBType = 24
	LocationAEditionV6      DBType = 25
	RegistrarEdition        DBType = 26
	RegistrarEditionV6      DBType = 27
	UserTypeEdition         DBType = 28
	UserTypeEditionV6       DBType = 29
	CityEditionRev1V6       DBType = 30
	CityEditionRev0V6       DBType = 31
	NetSpeedEditionRev1     DBType = 32
	NetSpeedEditionRev1V6   DBType = 33
	CountryConfEdition      DBType = 34
	CityConfEdition         DBType = 35
	RegionConfEdition       DBType = 36
	PostalConfEdition       DBType = 37
	AccuracyRadiusEditionV6 DBType = 38
)

// charsetUTF8 is the charset id passed to the native set-charset call
// after every successful open.
const charsetUTF8 = 1
