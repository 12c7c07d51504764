package app

import (
	"slices"
	"strings"

	"hotel_merge/internal/domain"
)

// Merge groups hotels by id and folds each group into one record.
// Groups keep first-seen order, and so do records within a group.
func Merge(hotels []domain.Hotel) []domain.Hotel {
	index := make(map[string]int, len(hotels))
	var out []domain.Hotel
	for _, h := range hotels {
		i, ok := index[h.ID]
		if !ok {
			index[h.ID] = len(out)
			out = append(out, cloneHotel(h))
			continue
		}
		out[i] = MergePair(out[i], h)
	}
	return out
}

// MergePair returns the next accumulator value. Neither argument is modified.
//
// id and destinationId stay with the accumulator. Text fields go through
// MergeString. Everything else is replaced by next unless next is empty or
// identical.
func MergePair(acc, next domain.Hotel) domain.Hotel {
	out := cloneHotel(acc)
	out.Name = MergeString(acc.Name, next.Name)
	out.Description = mergeStringPtr(acc.Description, next.Description)
	out.Location = mergeLocation(acc.Location, next.Location)
	out.Amenities = lastNonEmpty(out.Amenities, next.Amenities, amenitiesEmpty, amenitiesEqual, cloneAmenities)
	out.Images = lastNonEmpty(out.Images, next.Images, imagesEmpty, imagesEqual, cloneImages)
	out.BookingConditions = lastNonEmpty(out.BookingConditions, next.BookingConditions,
		func(s []string) bool { return len(s) == 0 }, slices.Equal[[]string, string], slices.Clone[[]string, string])
	return out
}

// MergeString keeps the richer of two values: a blank side loses, otherwise
// the longer trimmed value wins and ties keep acc.
func MergeString(acc, next string) string {
	a, n := strings.TrimSpace(acc), strings.TrimSpace(next)
	switch {
	case n == "":
		return a
	case a == "":
		return n
	case len(n) > len(a):
		return n
	default:
		return a
	}
}

func mergeStringPtr(acc, next *string) *string {
	var a, n string
	if acc != nil {
		a = *acc
	}
	if next != nil {
		n = *next
	}
	if m := MergeString(a, n); m != "" {
		return &m
	}
	return nil
}

func mergeLocation(acc, next *domain.Location) *domain.Location {
	if acc == nil && next == nil {
		return nil
	}
	var a, n domain.Location
	if acc != nil {
		a = *acc
	}
	if next != nil {
		n = *next
	}
	floatEq := func(x, y *float64) bool { return *x == *y }
	isNil := func(p *float64) bool { return p == nil }
	clone := func(p *float64) *float64 { v := *p; return &v }
	return &domain.Location{
		Latitude:  lastNonEmpty(a.Latitude, n.Latitude, isNil, floatEq, clone),
		Longitude: lastNonEmpty(a.Longitude, n.Longitude, isNil, floatEq, clone),
		Address:   mergeStringPtr(a.Address, n.Address),
		Country:   mergeStringPtr(a.Country, n.Country),
	}
}

// lastNonEmpty is the rule for values that have no notion of "richer":
// an empty side loses, identical values keep acc, otherwise next wins.
func lastNonEmpty[T any](acc, next T, empty func(T) bool, equal func(T, T) bool, clone func(T) T) T {
	switch {
	case empty(next):
		return acc
	case empty(acc), !equal(acc, next):
		return clone(next)
	default:
		return acc
	}
}

func amenitiesEmpty(a *domain.Amenities) bool {
	return a == nil || len(a.General)+len(a.Room) == 0
}

func amenitiesEqual(x, y *domain.Amenities) bool {
	return slices.Equal(x.General, y.General) && slices.Equal(x.Room, y.Room)
}

func imagesEmpty(i *domain.Images) bool {
	return i == nil || len(i.Rooms)+len(i.Amenities) == 0
}

func imagesEqual(x, y *domain.Images) bool {
	return slices.Equal(x.Rooms, y.Rooms) && slices.Equal(x.Amenities, y.Amenities)
}

func cloneAmenities(a *domain.Amenities) *domain.Amenities {
	if a == nil {
		return nil
	}
	return &domain.Amenities{General: slices.Clone(a.General), Room: slices.Clone(a.Room)}
}

func cloneImages(i *domain.Images) *domain.Images {
	if i == nil {
		return nil
	}
	return &domain.Images{Rooms: slices.Clone(i.Rooms), Amenities: slices.Clone(i.Amenities)}
}

// cloneHotel deep-copies h so accumulators never alias adapter output.
func cloneHotel(h domain.Hotel) domain.Hotel {
	out := h
	if h.Description != nil {
		d := *h.Description
		out.Description = &d
	}
	if h.Location != nil {
		loc := *h.Location
		out.Location = &loc
		if loc.Latitude != nil {
			v := *loc.Latitude
			out.Location.Latitude = &v
		}
		if loc.Longitude != nil {
			v := *loc.Longitude
			out.Location.Longitude = &v
		}
		if loc.Address != nil {
			v := *loc.Address
			out.Location.Address = &v
		}
		if loc.Country != nil {
			v := *loc.Country
			out.Location.Country = &v
		}
	}
	out.Amenities = cloneAmenities(h.Amenities)
	out.Images = cloneImages(h.Images)
	out.BookingConditions = slices.Clone(h.BookingConditions)
	return out
}
