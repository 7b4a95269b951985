package vocabulary

// RDFSNamespace is the base IRI of the RDF Schema vocabulary.
const RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

// RDFS vocabulary terms used during translation.
const (
	// RDFSSubClassOf links a class to a superclass.
	RDFSSubClassOf = RDFSNamespace + "subClassOf"

	// RDFSSubPropertyOf links a property to a superproperty.
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"

	// RDFSDomain constrains the subjects of a property.
	RDFSDomain = RDFSNamespace + "domain"

	// RDFSRange constrains the objects of a property.
	RDFSRange = RDFSNamespace + "range"

	// RDFSLabel is a human-readable entity label.
	RDFSLabel = RDFSNamespace + "label"

	// RDFSComment is a human-readable entity description.
	RDFSComment = RDFSNamespace + "comment"

	// RDFSDatatype is the class of datatypes.
	RDFSDatatype = RDFSNamespace + "Datatype"
)
