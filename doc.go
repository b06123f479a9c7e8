// Package lvcluster is a clustering engine for small in-memory datasets:
// pluggable distances, partitional and agglomerative algorithms, and
// pair-counting agreement scores against a ground truth.
//
// 🚀 What is inside?
//
//	• Distances: Euclidean, Manhattan, edit (Levenshtein), HMM, DTW
//	• Partitional: K-Means, K-Medoids (PAM-style)
//	• Hierarchical: seven Lance–Williams linkages, a reusable Dendrogram
//	• Evaluation: Rand Index, Adjusted Rand Index, Collapsed Pairs
//	• Driver: a k-sweep with structured logs, metrics and result files
//
// Under the hood, everything is organized under flat subpackages:
//
//	dataset/      — Instance, Dataset, ARFF reader, ground-truth reader
//	distance/     — Func capability, variants, pairwise Matrix
//	hmm/          — discrete hidden Markov model, Baum–Welch fitting
//	clustering/   — Result, Status, error taxonomy, seeded RNG
//	kmeans/       — K-Means
//	kmedoids/     — K-Medoids
//	hierarchical/ — agglomeration, Dendrogram, Cut
//	evaluation/   — pair-counting metrics
//	config/       — run configuration (yaml, json, toml)
//	sweep/        — the k-sweep driver
//	results/      — k → labels sink (json, msgpack)
//	cmd/lvcluster — command-line entry point
//
// Quick start:
//
//	ds, _ := dataset.ReadARFFFile("iris.arff")
//	fn, _ := distance.New(distance.KindEuclidean)
//	d, _ := hierarchical.BuildDataset(ds, fn, hierarchical.Ward)
//	labels, _ := d.Cut(3)
package lvcluster
