package suppliers

import (
	"hotel_merge/internal/amenity"
	"hotel_merge/internal/domain"
)

// Acme reports a flat record with PascalCase keys and free-text Facilities.
//
// Description, images and booking conditions are read from lower-case keys
// Acme never sends ("Description" is its declared key), so they stay empty.
type Acme struct {
	endpoint string
	norm     *amenity.Normalizer
}

func NewAcme(endpoint string, norm *amenity.Normalizer) *Acme {
	return &Acme{endpoint: endpoint, norm: norm}
}

func (a *Acme) Name() string     { return "acme" }
func (a *Acme) Endpoint() string { return a.endpoint }

func (a *Acme) Parse(raw map[string]any) (domain.Hotel, error) {
	id, err := requireID(a.Name(), "Id", raw)
	if err != nil {
		return domain.Hotel{}, err
	}
	amen := a.norm.Classify(sliceStrings(raw, "Facilities"))
	return domain.Hotel{
		ID:            id,
		DestinationID: lookupID(raw, "DestinationId"),
		Name:          lookupStr(raw, "Name"),
		Location: &domain.Location{
			Latitude:  getFloatFlexible(raw, "Latitude"),
			Longitude: getFloatFlexible(raw, "Longitude"),
			Address:   ptrStr(lookupStr(raw, "Address")),
			Country:   ptrStr(lookupStr(raw, "Country")),
		},
		Amenities:         &amen,
		Description:       ptrStr(lookupStr(raw, "description")),
		Images:            images(raw, "images"),
		BookingConditions: sliceStrings(raw, "booking_conditions"),
	}, nil
}
