package cache

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Cache keys are namespaced per entity and per operation so that no two
// entities, and no two operations on the same entity, can collide:
//
//	<entity>:page:<cursor>:<limit>
//	<entity>:search:<term fingerprint>
//	dashboard:<metric>
//
// Free text never appears in a key: user-supplied search terms are hashed
// first, since raw input in the key namespace would both break prefix-based
// deletion and produce keys a Redis-style store rejects.

const sep = ":"

// PageKey names one page snapshot. A nil cursor (first page) is keyed as "-".
func PageKey(entity string, cursor *int64, limit int) string {
	from := "-"
	if cursor != nil {
		from = strconv.FormatInt(*cursor, 10)
	}
	return entity + sep + "page" + sep + from + sep + strconv.Itoa(limit)
}

// SearchKey names the merged result set for a normalized search term.
func SearchKey(entity, normalizedTerm string) string {
	return entity + sep + "search" + sep + Fingerprint(normalizedTerm)
}

// MetricKey names a dashboard aggregate.
func MetricKey(metric string) string {
	return "dashboard" + sep + metric
}

// EntityPrefix is the namespace prefix covering every key of one entity,
// usable with Store.DeleteByPrefix.
func EntityPrefix(entity string) string {
	return entity + sep
}

// Fingerprint collapses arbitrary text into a short stable key segment.
func Fingerprint(parts ...string) string {
	h := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			h.WriteString("\x00")
		}
		h.WriteString(p)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// NormalizeTerm trims and case-folds a search term so that equivalent inputs
// share one cache entry.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
