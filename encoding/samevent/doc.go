// Package samevent decodes SAM and BAM alignment records into the few fields
// needed to link transcripts by mate-pair evidence: the read name, the
// reference and mate-reference names, and the reference span of the
// alignment.
//
// Text SAM is decoded lazily.  Scan only splits a line and exposes the name
// fields; the position and CIGAR are parsed when Record.Span is called, so
// callers that discard most records by name never pay for span decoding.
package samevent
