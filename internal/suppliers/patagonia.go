package suppliers

import (
	"hotel_merge/internal/amenity"
	"hotel_merge/internal/domain"
)

// Patagonia is destination-oriented: the hotel name is taken from the
// destination field and amenities arrive as one free-text list.
type Patagonia struct {
	endpoint string
	norm     *amenity.Normalizer
}

func NewPatagonia(endpoint string, norm *amenity.Normalizer) *Patagonia {
	return &Patagonia{endpoint: endpoint, norm: norm}
}

func (p *Patagonia) Name() string     { return "patagonia" }
func (p *Patagonia) Endpoint() string { return p.endpoint }

func (p *Patagonia) Parse(raw map[string]any) (domain.Hotel, error) {
	id, err := requireID(p.Name(), "id", raw)
	if err != nil {
		return domain.Hotel{}, err
	}
	dest := lookupID(raw, "destination")
	amen := p.norm.Classify(sliceStrings(raw, "amenities"))
	return domain.Hotel{
		ID:            id,
		DestinationID: dest,
		Name:          dest,
		Location: &domain.Location{
			Latitude:  getFloatFlexible(raw, "lat"),
			Longitude: getFloatFlexible(raw, "lng"),
			Address:   ptrStr(lookupStr(raw, "address")),
			Country:   ptrStr(lookupStr(raw, "country")),
		},
		Amenities:         &amen,
		Description:       ptrStr(lookupStr(raw, "details")),
		Images:            images(raw, "images"),
		BookingConditions: sliceStrings(raw, "booking_conditions"),
	}, nil
}
