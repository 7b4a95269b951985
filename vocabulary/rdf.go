package vocabulary

// RDFNamespace is the base IRI of the RDF Concepts vocabulary.
const RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// RDF vocabulary terms used during translation.
const (
	// RDFType asserts that the subject is an instance of the object class.
	RDFType = RDFNamespace + "type"

	// RDFFirst is the first item of the subject RDF list node.
	RDFFirst = RDFNamespace + "first"

	// RDFRest is the remainder of the subject RDF list after the first item.
	RDFRest = RDFNamespace + "rest"

	// RDFNil is the empty RDF list terminator.
	RDFNil = RDFNamespace + "nil"

	// RDFList is the class of RDF lists.
	RDFList = RDFNamespace + "List"

	// RDFProperty is the class of RDF properties.
	RDFProperty = RDFNamespace + "Property"

	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = RDFNamespace + "langString"

	// RDFPlainLiteral is the datatype of untyped literals.
	RDFPlainLiteral = RDFNamespace + "PlainLiteral"
)
