// Package config loads and validates the run configuration of the
// lvcluster command.
//
// The file format follows the extension: .toml is read with BurntSushi/toml,
// .yaml, .yml and .json with yaml.v3 (JSON documents are valid YAML).
// Keys:
//
//	min_k, max_k      cluster count range to sweep
//	beta              evaluation runs when beta >= 1
//	cluster_alg       kmeans | kmedoids | hierarchical
//	dist_measure      euclidean | manhattan | edit | hmm | dtw
//	agglo_method      single | complete | average | centroid | median | ward | weighted average
//	arffpath          input dataset
//	cluster_outpath   result file
//	gt_outpath        ground truth file (optional)
//	max_iterations    partitional iteration cap (default 100)
//	seed              initialisation seed (default 1)
//	workers           distance matrix goroutines (default 1)
//	output_format     json | msgpack (default: from cluster_outpath)
//	dtw_window        Sakoe–Chiba band for dtw (default unconstrained)
//	edit_costs        {insert, delete, substitute} for edit
package config
