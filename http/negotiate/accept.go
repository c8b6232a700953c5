package negotiate

import (
	"strings"

	"github.com/xy-planning-network/junction"
)

// An acceptEntry is one parsed, comma-separated segment of an Accept header.
//
// q holds the quality in thousandths so entries compare without float fuzz.
type acceptEntry struct {
	mediaType string
	q         int
}

// parseAccept parses an Accept header value into its usable entries.
//
// Malformed segments and segments the client rejects outright (q=0) fall away.
// A bare "*" normalizes to "*/*".
func parseAccept(header string) []acceptEntry {
	var entries []acceptEntry
	for _, part := range strings.Split(header, ",") {
		segments := strings.Split(part, ";")

		mt := strings.ToLower(strings.TrimSpace(segments[0]))
		if mt == "*" {
			mt = "*/*"
		}
		if t, s := splitMediaType(mt); t == "" || s == "" {
			continue
		}

		q := 1000
		for _, param := range segments[1:] {
			k, v, found := strings.Cut(strings.TrimSpace(param), "=")
			if !found || strings.TrimSpace(k) != "q" {
				continue
			}

			q = parseQuality(strings.TrimSpace(v))
			break
		}
		if q <= 0 {
			continue
		}

		entries = append(entries, acceptEntry{mediaType: mt, q: q})
	}

	return entries
}

// parseQuality parses a q-value into thousandths: "1" => 1000, "0.85" => 850.
//
// Anything outside the RFC 7231 qvalue grammar returns -1.
func parseQuality(s string) int {
	if s == "" || len(s) > 5 {
		return -1
	}

	switch s[0] {
	case '1':
		if len(s) == 1 {
			return 1000
		}
		if s[1] != '.' || len(s) < 3 {
			return -1
		}
		for i := 2; i < len(s); i++ {
			if s[i] != '0' {
				return -1
			}
		}
		return 1000

	case '0':
		if len(s) == 1 {
			return 0
		}
		if s[1] != '.' || len(s) < 3 {
			return -1
		}
		result, multiplier := 0, 100
		for i := 2; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return -1
			}
			result += int(s[i]-'0') * multiplier
			multiplier /= 10
		}
		return result
	}

	return -1
}

// matchMediaType reports the quality and specificity of offer against the
// entry, or (0, 0) when they do not intersect.
//
// Specificity comes from the entry's side: 3 for an exact type/subtype,
// 2 for type/*, 1 for */*. Offers may carry wildcards themselves; a */*
// catch-all offer intersects every entry.
func matchMediaType(offer string, e acceptEntry) (q, specificity int) {
	ot, os := splitMediaType(offer)
	et, es := splitMediaType(e.mediaType)
	if ot == "" || os == "" || et == "" || es == "" {
		return 0, 0
	}

	if et != "*" && ot != "*" && et != ot {
		return 0, 0
	}
	if es != "*" && os != "*" && es != os {
		return 0, 0
	}

	switch {
	case et == "*":
		return e.q, 1
	case es == "*":
		return e.q, 2
	default:
		return e.q, 3
	}
}

// splitMediaType breaks a media type into lowercased type and subtype,
// dropping any parameters. A value without a slash yields empty strings.
func splitMediaType(mediaType string) (string, string) {
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	t, s, found := strings.Cut(mediaType, "/")
	if !found || t == "" || s == "" {
		return "", ""
	}

	return t, s
}

// resolveContentType determines the Content-Type a response carries when the
// offer was selected against the entry.
//
// Concrete offers pass through as registered. Wildcard parts fill in from the
// entry; parts still unresolved fall back to junction.DefaultContentType.
func resolveContentType(offer string, e acceptEntry) string {
	t, s := splitMediaType(offer)
	if t != "" && t != "*" && s != "" && s != "*" {
		return offer
	}

	et, es := splitMediaType(e.mediaType)
	if t == "*" {
		t = et
	}
	if s == "*" {
		s = es
	}
	if t == "" || t == "*" || s == "" || s == "*" {
		return junction.DefaultContentType
	}

	return t + "/" + s
}
