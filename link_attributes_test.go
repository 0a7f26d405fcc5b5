package dtanet

import (
	"errors"
	"testing"
)

func testAttributes() LinkAttributes {
	return LinkAttributes{
		FacilityType:          FACILITY_ARTERIAL,
		FreeflowSpeed:         35,
		EffectiveLengthFactor: 1.0,
		ResponseTimeFactor:    1.05,
		NumLanes:              2,
		RoundAbout:            false,
		Level:                 0,
	}
}

func newTestRoadLink(t *testing.T, id LinkID, attrs LinkAttributes) *RoadLink {
	t.Helper()
	link, err := NewRoadLink(id, NewNode(NodeID(id*2), 0, 0), NewNode(NodeID(id*2+1), 100, 100), "", attrs)
	if err != nil {
		t.Fatal(err)
	}
	return link
}

func TestHasSameAttributesReflexive(t *testing.T) {
	link := newTestRoadLink(t, 1, testAttributes())
	same, err := link.HasSameAttributes(link.Link)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Errorf("Link must have same attributes as itself")
	}
}

func TestHasSameAttributesSymmetric(t *testing.T) {
	first := newTestRoadLink(t, 1, testAttributes())
	second := newTestRoadLink(t, 2, testAttributes())
	// Different ids, labels and endpoints take no part in the comparison
	second.SetLabel("другая улица")

	same, err := first.HasSameAttributes(second.Link)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Errorf("Links with equal attribute tuples must compare equal")
	}
	same, err = second.HasSameAttributes(first.Link)
	if err != nil {
		t.Fatal(err)
	}
	if !same {
		t.Errorf("Attribute comparison must be symmetric")
	}
}

func TestHasSameAttributesEachFieldCounts(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*LinkAttributes)
	}{
		{"facility type", func(attrs *LinkAttributes) { attrs.FacilityType = FACILITY_LOCAL }},
		{"freeflow speed", func(attrs *LinkAttributes) { attrs.FreeflowSpeed += 5 }},
		{"effective length factor", func(attrs *LinkAttributes) { attrs.EffectiveLengthFactor += 0.1 }},
		{"response time factor", func(attrs *LinkAttributes) { attrs.ResponseTimeFactor += 0.1 }},
		{"num lanes", func(attrs *LinkAttributes) { attrs.NumLanes++ }},
		{"roundabout", func(attrs *LinkAttributes) { attrs.RoundAbout = !attrs.RoundAbout }},
		{"level", func(attrs *LinkAttributes) { attrs.Level++ }},
	}
	base := newTestRoadLink(t, 1, testAttributes())
	for _, mutation := range mutations {
		attrs := testAttributes()
		mutation.mutate(&attrs)
		other := newTestRoadLink(t, 2, attrs)
		same, err := base.HasSameAttributes(other.Link)
		if err != nil {
			t.Fatal(err)
		}
		if same {
			t.Errorf("Differing %s must break attribute equality", mutation.name)
		}
	}
}

func TestHasSameAttributesMissing(t *testing.T) {
	bare, err := NewLink(1, NewNode(1, 0, 0), NewNode(2, 1, 1), "")
	if err != nil {
		t.Fatal(err)
	}
	rich := newTestRoadLink(t, 2, testAttributes())

	_, err = bare.HasSameAttributes(rich.Link)
	if !errors.Is(err, ErrMissingAttributes) {
		t.Errorf("Bare link must fail attribute comparison with ErrMissingAttributes, but got %v", err)
	}
	_, err = rich.HasSameAttributes(bare)
	if !errors.Is(err, ErrMissingAttributes) {
		t.Errorf("Comparison against bare link must fail with ErrMissingAttributes, but got %v", err)
	}
	_, err = rich.HasSameAttributes(nil)
	if !errors.Is(err, ErrMissingAttributes) {
		t.Errorf("Comparison against nil must fail with ErrMissingAttributes, but got %v", err)
	}
}

func TestDefaultLinkAttributes(t *testing.T) {
	attrs := DefaultLinkAttributes(FACILITY_FREEWAY)
	if attrs.FacilityType != FACILITY_FREEWAY {
		t.Errorf("Facility type must be %s, but got %s", FACILITY_FREEWAY, attrs.FacilityType)
	}
	if attrs.FreeflowSpeed != defaultSpeedByFacilityType[FACILITY_FREEWAY] {
		t.Errorf("Freeflow speed must follow per-facility defaults")
	}
	if attrs.NumLanes != defaultLanesByFacilityType[FACILITY_FREEWAY] {
		t.Errorf("Lanes must follow per-facility defaults")
	}
}
