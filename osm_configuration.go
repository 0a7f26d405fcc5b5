package dtanet

// ImportConfiguration filters OSM ways by tag value and maps them onto
// facility types
type ImportConfiguration struct {
	EntityName string // Currently we support 'highway' only
	Tags       []string
}

// CheckTag checks if incoming tag is represented in configuration
func (cfg *ImportConfiguration) CheckTag(tag string) bool {
	for i := range cfg.Tags {
		if cfg.Tags[i] == tag {
			return true
		}
	}
	return false
}

// DefaultImportConfiguration covers the drivable road classes
func DefaultImportConfiguration() *ImportConfiguration {
	return &ImportConfiguration{
		EntityName: "highway",
		Tags:       []string{"motorway", "motorway_link", "trunk", "trunk_link", "primary", "primary_link", "secondary", "secondary_link", "tertiary", "tertiary_link", "residential", "living_street", "unclassified"},
	}
}

var facilityTypeByHighwayTag = map[string]FacilityType{
	"motorway":       FACILITY_FREEWAY,
	"motorway_link":  FACILITY_RAMP,
	"trunk":          FACILITY_EXPRESSWAY,
	"trunk_link":     FACILITY_RAMP,
	"primary":        FACILITY_ARTERIAL,
	"primary_link":   FACILITY_RAMP,
	"secondary":      FACILITY_ARTERIAL,
	"secondary_link": FACILITY_RAMP,
	"tertiary":       FACILITY_COLLECTOR,
	"tertiary_link":  FACILITY_RAMP,
	"residential":    FACILITY_LOCAL,
	"living_street":  FACILITY_LOCAL,
	"unclassified":   FACILITY_LOCAL,
	"service":        FACILITY_LOCAL,
}

// facilityTypeForTag resolves the facility type for a highway tag value.
// Unknown values fall back to FACILITY_LOCAL.
func facilityTypeForTag(tag string) FacilityType {
	if facilityType, ok := facilityTypeByHighwayTag[tag]; ok {
		return facilityType
	}
	return FACILITY_LOCAL
}

// See ref.: https://wiki.openstreetmap.org/wiki/Tag:junction%3Droundabout
var junctionRoundaboutTags = map[string]struct{}{
	"circular":   {},
	"roundabout": {},
}
