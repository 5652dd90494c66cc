// Package spec implements a schema description language for data shapes and
// its versionable binary encoding.
//
// A Spec is a recursive tree describing the shape of data: primitives,
// fixed- or variable-size collections, records, enums, unions, optionals,
// and named sub-schemas with references. The package serializes the schema
// itself, never instances of data conforming to it.
//
// # Dual Encoding
//
// Every schema has two byte forms:
//   - Compact: the smallest correct encoding. Single reserved alias bytes
//     stand in for the statistically dominant cases (small uint/int scales,
//     single/double floats, variable UTF-8 strings).
//   - Longform: the canonical alias-free encoding. Two schemas are
//     structurally equal exactly when their longform bytes are identical,
//     so this form serves as a stable identity key (see Fingerprint) that
//     does not shift as the alias table evolves.
//
// One decoder reads both: alias bytes and their general forms are exact
// synonyms on the wire.
//
// # Wire Format
//
// A node is one tag byte followed by a variant-specific payload:
//
//	bool=32 uint=33 name=34 int=35 binfp=36 decfp=37 ref=38 void=39
//	list=40 map=41 record=42 enum=43 union=45 decimal=46 tuple=47
//	bytes=48 string=49 optional=63
//
// Alias bytes occupy 0..10: uint scales 0-3, int scales 0-3, single, double,
// and variable UTF-8 string. General tags start at 32, so the two spaces
// cannot collide.
//
// Payloads: a size qualifier is one byte (0 = fixed, followed by a
// variable-length bound; 1 = variable). Names carry a variable-length byte
// count then that many UTF-8 bytes. Aggregates carry a variable-length
// element count then their elements in declaration order; record and enum
// elements are (name, spec) pairs.
//
// # Errors
//
// Decoding malformed input never panics and never yields a partial tree.
// The failure kinds are closed: ErrUnexpectedEndOfBytes for truncation at
// any depth, the Unknown*FlagError types for bytes outside their closed
// sets, IntegerOverflowError for variable-length counts beyond uint64, and
// ReadError for underlying source failures. Any strict prefix of a valid
// encoding fails with exactly ErrUnexpectedEndOfBytes.
package spec
