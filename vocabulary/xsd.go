package vocabulary

// XSDNamespace is the base IRI of the XML Schema datatypes vocabulary.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// XSD datatypes the engine recognizes in literals and data restrictions.
const (
	// XSDString is the string datatype.
	XSDString = XSDNamespace + "string"

	// XSDInteger is the arbitrary-precision integer datatype.
	XSDInteger = XSDNamespace + "integer"

	// XSDNonNegativeInteger is the datatype of cardinality values.
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"

	// XSDBoolean is the boolean datatype.
	XSDBoolean = XSDNamespace + "boolean"

	// XSDDecimal is the decimal datatype.
	XSDDecimal = XSDNamespace + "decimal"

	// XSDDouble is the double-precision float datatype.
	XSDDouble = XSDNamespace + "double"

	// XSDDateTime is the timestamp datatype.
	XSDDateTime = XSDNamespace + "dateTime"
)
