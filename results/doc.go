// Package results is the sink for sweep output: the mapping from cluster
// count k to the label of every instance.
//
// JSON output keeps the shape consumers already read,
//
//	{"2": [0, 0, 1], "3": [0, 1, 2]}
//
// and msgpack writes the same map in binary form for large datasets.
package results
