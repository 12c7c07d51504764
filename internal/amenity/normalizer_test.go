package amenity_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hotel_merge/internal/amenity"
	"hotel_merge/internal/domain"
)

func TestMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	n := amenity.Default()
	for _, label := range []string{"Outdoor pool", "outdoor pool", "  OUTDOOR POOL ", "OutdoorPool", "out door\tpool"} {
		g, r, ok := n.Match(label)
		if !ok || g != "outdoor pool" || r != "" {
			t.Fatalf("Match(%q) = %q, %q, %v", label, g, r, ok)
		}
	}
}

func TestMatch_Unknown(t *testing.T) {
	n := amenity.Default()
	if g, r, ok := n.Match("Tennis Court"); ok || g != "" || r != "" {
		t.Fatalf("expected no match, got %q %q", g, r)
	}
}

func TestClassify_SplitsAndDrops(t *testing.T) {
	n := amenity.Default()
	got := n.Classify([]string{"Pool", "BusinessCenter", "WiFi ", "DryCleaning", " Breakfast", "Aircon", "Tv", "Coffee machine", "Kettle", "Hair dryer", "Iron", "Tennis Court", "Outdoor pool"})
	want := domain.Amenities{
		General: []string{"business center", "wifi", "dry cleaning", "breakfast", "outdoor pool"},
		Room:    []string{"aircon", "tv", "coffee machine", "kettle", "hair dryer", "iron"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Classify mismatch (-want +got):\n%s", diff)
	}
}

func TestClassify_Dedupes(t *testing.T) {
	n := amenity.Default()
	got := n.Classify([]string{"WiFi", "wifi", " W i F i"})
	if len(got.General) != 1 || got.General[0] != "wifi" {
		t.Fatalf("unexpected general: %v", got.General)
	}
}

func TestClassify_OverlappingVocabularies(t *testing.T) {
	n := amenity.NewNormalizer([]string{"minibar", "wifi"}, []string{"Mini Bar"})
	got := n.Classify([]string{"mini bar"})
	if len(got.General) != 1 || got.General[0] != "minibar" {
		t.Fatalf("general: %v", got.General)
	}
	if len(got.Room) != 1 || got.Room[0] != "Mini Bar" {
		t.Fatalf("room: %v", got.Room)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	got := amenity.Default().Classify(nil)
	if got.General == nil || got.Room == nil || len(got.General)+len(got.Room) != 0 {
		t.Fatalf("expected empty non-nil lists, got %+v", got)
	}
}
