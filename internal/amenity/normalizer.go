// Package amenity canonicalizes free-text amenity labels against a fixed vocabulary.
package amenity

import (
	"strings"
	"unicode"

	"hotel_merge/internal/domain"
)

var (
	GeneralVocabulary = []string{"outdoor pool", "indoor pool", "business center", "childcare", "wifi", "dry cleaning", "breakfast"}
	RoomVocabulary    = []string{"aircon", "tv", "coffee machine", "kettle", "hair dryer", "iron", "bathtub"}
)

// Normalizer is immutable after construction and safe for concurrent use.
type Normalizer struct {
	general map[string]string // normalized key -> canonical entry
	room    map[string]string
}

func NewNormalizer(general, room []string) *Normalizer {
	return &Normalizer{general: table(general), room: table(room)}
}

// Default returns a Normalizer over the reference vocabulary.
func Default() *Normalizer { return NewNormalizer(GeneralVocabulary, RoomVocabulary) }

func table(vocab []string) map[string]string {
	m := make(map[string]string, len(vocab))
	for _, entry := range vocab {
		m[Key(entry)] = entry
	}
	return m
}

// Key lowercases a label and removes every whitespace rune.
func Key(label string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, label)
}

// Match tests a raw label against both categories independently.
func (n *Normalizer) Match(label string) (general, room string, ok bool) {
	k := Key(label)
	general = n.general[k]
	room = n.room[k]
	return general, room, general != "" || room != ""
}

// Classify splits a flat list of raw labels into canonical general and room
// entries. Unknown labels are dropped; duplicates keep their first position.
func (n *Normalizer) Classify(labels []string) domain.Amenities {
	out := domain.Amenities{General: []string{}, Room: []string{}}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		g, r, ok := n.Match(l)
		if !ok {
			continue
		}
		if g != "" {
			if _, dup := seen["g:"+g]; !dup {
				seen["g:"+g] = struct{}{}
				out.General = append(out.General, g)
			}
		}
		if r != "" {
			if _, dup := seen["r:"+r]; !dup {
				seen["r:"+r] = struct{}{}
				out.Room = append(out.Room, r)
			}
		}
	}
	return out
}
