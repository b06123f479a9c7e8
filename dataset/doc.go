// Package dataset is the in-memory instance table clustered by lvcluster.
//
// A Dataset is an ordered, immutable sequence of Instances that share a
// schema of Attributes. The position of an instance (0..n-1) is its identity
// everywhere else in the module: distance matrices, label assignments and
// ground truth are all indexed by it.
//
// Attribute kinds:
//
//   - Numeric — float64 values; required by Euclidean, Manhattan, DTW and K-Means.
//   - Nominal — one label of a declared domain; Num holds the domain position.
//   - String  — free text; expands to one token per rune in Instance.Tokens.
//
// Loading:
//
//	ds, err := dataset.ReadARFFFile("data/points.arff")
//
// ReadARFF understands the dense attribute-relation format (relation,
// attribute and data sections, nominal domains, quoted strings, % comments).
// For tests and programmatic use, FromVectors and FromStrings build small
// datasets directly.
package dataset
