package suppliers

import "hotel_merge/internal/domain"

// Paperflies nests location and pre-split amenities. Its longitude key is
// capitalised ("Longitude") while latitude is not.
type Paperflies struct{ endpoint string }

func NewPaperflies(endpoint string) *Paperflies { return &Paperflies{endpoint: endpoint} }

func (p *Paperflies) Name() string     { return "paperflies" }
func (p *Paperflies) Endpoint() string { return p.endpoint }

func (p *Paperflies) Parse(raw map[string]any) (domain.Hotel, error) {
	id, err := requireID(p.Name(), "hotel_id", raw)
	if err != nil {
		return domain.Hotel{}, err
	}
	h := domain.Hotel{
		ID:                id,
		DestinationID:     lookupID(raw, "destination_id"),
		Name:              lookupStr(raw, "hotel_name"),
		Description:       ptrStr(lookupStr(raw, "details")),
		Images:            images(raw, "images"),
		BookingConditions: sliceStrings(raw, "booking_conditions"),
	}
	if loc := lookupMap(raw, "location"); loc != nil {
		h.Location = &domain.Location{
			Latitude:  getFloatFlexible(loc, "latitude"),
			Longitude: getFloatFlexible(loc, "Longitude"),
			Address:   ptrStr(lookupStr(loc, "address")),
			Country:   ptrStr(lookupStr(loc, "country")),
		}
	}
	// already canonical; used verbatim
	if am := lookupMap(raw, "amenities"); am != nil {
		h.Amenities = &domain.Amenities{
			General: nonNil(sliceStrings(am, "general")),
			Room:    nonNil(sliceStrings(am, "room")),
		}
	}
	return h, nil
}
