package domain

// Hotel is the canonical, supplier-independent hotel record.
type Hotel struct {
	ID                string     `json:"id"`
	DestinationID     string     `json:"destinationId"`
	Name              string     `json:"name"`
	Description       *string    `json:"description"`
	Location          *Location  `json:"location"`
	Amenities         *Amenities `json:"amenities"`
	Images            *Images    `json:"images"`
	BookingConditions []string   `json:"bookingConditions"`
}

type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
	Country   *string  `json:"country"`
}

// Amenities holds canonical vocabulary entries only, never raw supplier tokens.
type Amenities struct {
	General []string `json:"general"`
	Room    []string `json:"room"`
}

type Images struct {
	Rooms     []string `json:"rooms"`
	Amenities []string `json:"amenities"`
}
