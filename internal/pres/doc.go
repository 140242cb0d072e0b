// Package pres defines the high-level presentation data model and the
// builder that assembles consistent presentations from it.
//
// The model is deliberately independent of the wire format: it carries
// only the concepts an author works with (cues, slides, groups,
// arrangements) and none of the serialization detail. Package adapter
// lowers it to wire messages.
package pres
