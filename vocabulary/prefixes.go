package vocabulary

import (
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// shortenCacheSize bounds the memoized CURIE results. Ontologies reference a
// long tail of IRIs in diagnostics; eviction is harmless here because Shorten
// is a pure function of the registry.
const shortenCacheSize = 4096

// Prefix registry. Prefixes registered here are used by Shorten and by the
// functional-syntax writer's Prefix declarations.
var (
	registryMu sync.RWMutex
	prefixes   = map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"owl":  OWLNamespace,
		"xsd":  XSDNamespace,
	}
	shortenCache *lru.Cache[string, string]
)

func init() {
	cache, err := lru.New[string, string](shortenCacheSize)
	if err != nil {
		panic("vocabulary: init shorten cache: " + err.Error())
	}
	shortenCache = cache
}

// RegisterPrefix associates a prefix label with a namespace IRI. Registering
// an existing label overwrites it, which allows documents to rebind prefixes.
func RegisterPrefix(label, namespace string) {
	registryMu.Lock()
	prefixes[label] = namespace
	registryMu.Unlock()
	shortenCache.Purge()
}

// Prefixes returns a copy of the current prefix registry.
func Prefixes() map[string]string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make(map[string]string, len(prefixes))
	for label, ns := range prefixes {
		out[label] = ns
	}
	return out
}

// Shorten returns the CURIE form of an IRI using the longest matching
// registered namespace, or the IRI unchanged when no namespace matches.
// Results are memoized.
func Shorten(iri string) string {
	if cached, ok := shortenCache.Get(iri); ok {
		return cached
	}

	registryMu.RLock()
	bestLabel := ""
	bestLen := 0
	for label, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > bestLen {
			bestLabel = label
			bestLen = len(ns)
		}
	}
	registryMu.RUnlock()

	short := iri
	if bestLen > 0 {
		short = bestLabel + ":" + iri[bestLen:]
	}
	shortenCache.Add(iri, short)
	return short
}

// SortedPrefixLabels returns the registered prefix labels in lexical order,
// for deterministic rendering.
func SortedPrefixLabels() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	labels := make([]string, 0, len(prefixes))
	for label := range prefixes {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
