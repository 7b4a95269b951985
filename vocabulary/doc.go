// Package vocabulary defines IRI constants for the W3C vocabularies the
// translation engine recognizes (RDF, RDFS, OWL, XSD) along with a prefix
// registry used to shorten IRIs in diagnostics and rendered output.
//
// Constants are full IRIs, not CURIEs. Components that need a compact form
// for display call Shorten, which performs longest-prefix matching against
// the registered namespaces.
package vocabulary
