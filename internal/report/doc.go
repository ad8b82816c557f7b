// Package report turns evaluation results into a run report.
//
// A Report groups findings per rule in catalog order, each finding sorted by
// message and tagged with a fingerprint. Reports render as text for people
// or as canonical JSON for machines and golden files.
//
// # Canonical JSON
//
// The JSON form follows RFC 8785:
//   - Object keys sorted by UTF-16 code units
//   - No HTML escaping; U+2028 and U+2029 are written literally
//   - Strings NFC-normalized at the serialization boundary
//   - No floats, no nulls: absent optional fields are omitted
//
// # Fingerprints
//
// Fingerprint = hex(SHA256("gedcheck/finding/v1" + 0x00 + canonical(finding))).
// The null separator prevents domain/data boundary ambiguity. Fingerprints
// exclude the run identifier, so the same finding has the same fingerprint
// in every run.
package report
