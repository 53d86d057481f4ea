// Package sanitizer provides input normalization and validation functions for
// dashboard form fields.
//
// Every function is total: invalid input yields false from a validity check or
// an unchanged (trimmed) string from a normalizer, never a panic. Normalizers
// are idempotent - applying them multiple times produces the same result as
// applying them once, so forms can re-run them on blur.
//
// Validity and normalization are computed independently. Callers must not
// assume that a normalized value is valid.
//
// Covered fields:
//   - Phones: live-typing mask "+7 (AAA) BBB-CC-DD", completeness check,
//     display formatting, E.164 conversion
//   - Person names: one token of letters, optionally one inner hyphen for
//     surnames - "anne-marie" becomes "Anne-Marie"
//   - Position names: letters and single spaces - "  старший   тренер " becomes "Старший тренер"
//   - Strings: trim, collapse whitespace, optional values
//   - Contact phones: trim, drop empty entries, parse legacy "phone - description" values
//   - Requisites: digits-only checks
package sanitizer
