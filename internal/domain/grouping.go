package domain

// Field identifies a groupable ClickEvent attribute. The data layer maps
// each value to a column; there is no way to group by anything else.
type Field int

const (
	FieldCountry Field = iota + 1
	FieldState
	FieldCity
	FieldUTMSource
	FieldUTMMedium
	FieldUTMCampaign
	FieldUTMTerm
	FieldUTMContent
	FieldDeviceType
	FieldDeviceOS
	FieldDeviceBrowser
	FieldRefererCategory
)

// GeoKey selects the geographic level of GeoStats.
type GeoKey string

const (
	GeoCountry GeoKey = "country"
	GeoState   GeoKey = "state"
	GeoCity    GeoKey = "city"
)

var geoFields = map[GeoKey]Field{
	GeoCountry: FieldCountry,
	GeoState:   FieldState,
	GeoCity:    FieldCity,
}

// ParseGeoKey validates s. An empty string selects GeoCountry.
func ParseGeoKey(s string) (GeoKey, error) {
	if s == "" {
		return GeoCountry, nil
	}
	k := GeoKey(s)
	if _, ok := geoFields[k]; !ok {
		return "", &GroupingKeyError{Family: "geo", Key: s, Allowed: []string{"country", "state", "city"}}
	}
	return k, nil
}

// Field returns the click attribute this key groups by.
func (k GeoKey) Field() (Field, error) {
	f, ok := geoFields[k]
	if !ok {
		return 0, &GroupingKeyError{Family: "geo", Key: string(k), Allowed: []string{"country", "state", "city"}}
	}
	return f, nil
}

// UTMKey selects the campaign parameter of UTMStats.
type UTMKey string

const (
	UTMSource   UTMKey = "source"
	UTMMedium   UTMKey = "medium"
	UTMCampaign UTMKey = "campaign"
	UTMTerm     UTMKey = "term"
	UTMContent  UTMKey = "content"
)

var utmFields = map[UTMKey]Field{
	UTMSource:   FieldUTMSource,
	UTMMedium:   FieldUTMMedium,
	UTMCampaign: FieldUTMCampaign,
	UTMTerm:     FieldUTMTerm,
	UTMContent:  FieldUTMContent,
}

var utmAllowed = []string{"source", "medium", "campaign", "term", "content"}

// ParseUTMKey validates s. An empty string selects UTMSource.
func ParseUTMKey(s string) (UTMKey, error) {
	if s == "" {
		return UTMSource, nil
	}
	k := UTMKey(s)
	if _, ok := utmFields[k]; !ok {
		return "", &GroupingKeyError{Family: "utm", Key: s, Allowed: utmAllowed}
	}
	return k, nil
}

// Field returns the click attribute this key groups by.
func (k UTMKey) Field() (Field, error) {
	f, ok := utmFields[k]
	if !ok {
		return 0, &GroupingKeyError{Family: "utm", Key: string(k), Allowed: utmAllowed}
	}
	return f, nil
}

// DeviceKey selects the device property of DeviceStats.
type DeviceKey string

const (
	DeviceType    DeviceKey = "type"
	DeviceOS      DeviceKey = "os"
	DeviceBrowser DeviceKey = "browser"
)

var deviceFields = map[DeviceKey]Field{
	DeviceType:    FieldDeviceType,
	DeviceOS:      FieldDeviceOS,
	DeviceBrowser: FieldDeviceBrowser,
}

// ParseDeviceKey validates s. An empty string selects DeviceType.
func ParseDeviceKey(s string) (DeviceKey, error) {
	if s == "" {
		return DeviceType, nil
	}
	k := DeviceKey(s)
	if _, ok := deviceFields[k]; !ok {
		return "", &GroupingKeyError{Family: "device", Key: s, Allowed: []string{"type", "os", "browser"}}
	}
	return k, nil
}

// Field returns the click attribute this key groups by.
func (k DeviceKey) Field() (Field, error) {
	f, ok := deviceFields[k]
	if !ok {
		return 0, &GroupingKeyError{Family: "device", Key: string(k), Allowed: []string{"type", "os", "browser"}}
	}
	return f, nil
}
