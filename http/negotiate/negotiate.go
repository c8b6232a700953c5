package negotiate

import (
	"fmt"

	"github.com/xy-planning-network/junction"
)

// Negotiate picks the offered media type best matching the Accept header
// value, preferring higher quality, then greater specificity, then earlier
// registration.
//
// An empty header, or one whose entries are all malformed or rejected with
// q=0, selects the first offer. A header that intersects none of the offers
// returns an error wrapping junction.ErrNotAcceptable. Offering nothing is a
// setup mistake and returns an error wrapping junction.ErrBadConfig.
func Negotiate(header string, offers []string) (string, error) {
	i, _, err := negotiate(header, offers)
	if err != nil {
		return "", err
	}

	return offers[i], nil
}

// negotiate returns the index of the winning offer alongside the accepted
// entry it matched, so callers can resolve wildcard offers into a concrete
// Content-Type.
func negotiate(header string, offers []string) (int, acceptEntry, error) {
	if len(offers) == 0 {
		return 0, acceptEntry{}, fmt.Errorf("%w: no media types offered", junction.ErrBadConfig)
	}

	entries := parseAccept(header)
	if len(entries) == 0 {
		return 0, acceptEntry{}, nil
	}

	bestIdx := -1
	bestQ, bestSpec := 0, 0
	var bestEntry acceptEntry
	for i, offer := range offers {
		// The entry representing this offer is its most specific
		// intersection, quality breaking ties.
		oQ, oSpec := 0, 0
		var oEntry acceptEntry
		for _, e := range entries {
			q, spec := matchMediaType(offer, e)
			if spec == 0 {
				continue
			}
			if spec > oSpec || (spec == oSpec && q > oQ) {
				oQ, oSpec, oEntry = q, spec, e
			}
		}
		if oSpec == 0 {
			continue
		}

		if oQ > bestQ || (oQ == bestQ && oSpec > bestSpec) {
			bestIdx, bestQ, bestSpec, bestEntry = i, oQ, oSpec, oEntry
		}
	}

	if bestIdx == -1 {
		return 0, acceptEntry{}, fmt.Errorf("%w: no offer satisfies %q", junction.ErrNotAcceptable, header)
	}

	return bestIdx, bestEntry, nil
}
