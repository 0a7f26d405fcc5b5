package dtanet

type FacilityType uint16

const (
	FACILITY_FREEWAY = FacilityType(iota + 1)
	FACILITY_EXPRESSWAY
	FACILITY_RAMP
	FACILITY_ARTERIAL
	FACILITY_COLLECTOR
	FACILITY_LOCAL
	FACILITY_CONNECTOR
)

func (iotaIdx FacilityType) String() string {
	return [...]string{"freeway", "expressway", "ramp", "arterial", "collector", "local", "connector"}[iotaIdx-1]
}

// LinkAttributes is the fixed attribute set used for link deduplication and
// comparison across networks. The field list is defined once, here, so
// construction and comparison can not drift apart. Struct equality covers the
// fields as an ordered tuple; keep every field comparable.
type LinkAttributes struct {
	FacilityType          FacilityType
	FreeflowSpeed         float64
	EffectiveLengthFactor float64
	ResponseTimeFactor    float64
	NumLanes              int
	RoundAbout            bool
	Level                 int
}

var (
	defaultSpeedByFacilityType = map[FacilityType]float64{
		FACILITY_FREEWAY:    65,
		FACILITY_EXPRESSWAY: 55,
		FACILITY_RAMP:       35,
		FACILITY_ARTERIAL:   35,
		FACILITY_COLLECTOR:  30,
		FACILITY_LOCAL:      25,
		FACILITY_CONNECTOR:  25,
	}
	defaultLanesByFacilityType = map[FacilityType]int{
		FACILITY_FREEWAY:    4,
		FACILITY_EXPRESSWAY: 3,
		FACILITY_RAMP:       1,
		FACILITY_ARTERIAL:   2,
		FACILITY_COLLECTOR:  1,
		FACILITY_LOCAL:      1,
		FACILITY_CONNECTOR:  1,
	}
	defaultCapacityByFacilityType = map[FacilityType]int{
		FACILITY_FREEWAY:    2300,
		FACILITY_EXPRESSWAY: 2000,
		FACILITY_RAMP:       1600,
		FACILITY_ARTERIAL:   1800,
		FACILITY_COLLECTOR:  1200,
		FACILITY_LOCAL:      1000,
		FACILITY_CONNECTOR:  9999,
	}
)

// DefaultLinkAttributes returns the attribute set for a facility type with
// speed and lanes filled from the per-facility defaults
func DefaultLinkAttributes(facilityType FacilityType) LinkAttributes {
	return LinkAttributes{
		FacilityType:          facilityType,
		FreeflowSpeed:         defaultSpeedByFacilityType[facilityType],
		EffectiveLengthFactor: 1.0,
		ResponseTimeFactor:    1.0,
		NumLanes:              defaultLanesByFacilityType[facilityType],
		RoundAbout:            false,
		Level:                 0,
	}
}
