// Package cplxml decodes SMPTE ST 2067-3 Composition Playlist XML into the
// cpl.Document tree consumed by the validator.
//
// Decoding runs in three steps. The raw document is validated against the
// embedded schema set (ST 2067-2 core constraints, ST 2067-3 CPL, ST 433
// dcmlTypes and W3C XML signature), compiled once per process with
// github.com/jacoelho/xsd. It is then unmarshalled into a loose element tree
// that keeps every sequence element of a SequenceList, whatever its
// namespace. Finally the checks XSD cannot express run and identifiers are
// normalised from their urn:uuid form.
//
// Failures are reported as *DocumentParseError (input that is not
// well-formed XML) or *SchemaValidationError (every violation found, with
// its instance path and validation rule).
package cplxml
