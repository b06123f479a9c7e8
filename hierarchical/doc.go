// Package hierarchical implements agglomerative clustering: a dendrogram
// built once per (distance, linkage) pair and cut at any cluster count.
//
// Build:
//
//	dm, _ := distance.NewMatrix(ds, fn)
//	dg, err := hierarchical.Build(dm, hierarchical.Ward)
//
//	Starting from n singletons, the closest pair of clusters under the
//	linkage is merged until one cluster remains; ties go to the
//	lexicographically lowest pair of slots (a slot is named by the smallest
//	instance index it holds). Every merge records its two children, the
//	linkage distance ("height") and the size of the new cluster.
//
// Cut:
//
//	labels, err := dg.Cut(k) // 1 <= k <= n
//
//	Replaying the first n−k merges through a local disjoint-set yields
//	exactly k clusters. Cutting is a pure read: the tree is never modified,
//	so a sweep over k reuses one Dendrogram.
//
// Linkages (Lance–Williams updates):
//
//	single    min(d_ik, d_jk)
//	complete  max(d_ik, d_jk)
//	average   (n_i·d_ik + n_j·d_jk) / (n_i + n_j)
//	weighted  ½·d_ik + ½·d_jk
//	centroid  n_i/s·d_ik + n_j/s·d_jk − n_i·n_j/s²·d_ij,  s = n_i + n_j
//	median    ½·d_ik + ½·d_jk − ¼·d_ij
//	ward      ((n_i+n_k)·d_ik + (n_j+n_k)·d_jk − n_k·d_ij) / (n_i+n_j+n_k)
//
//	Centroid, median and Ward run on squared distances and report heights
//	as square roots. Centroid and median may produce inversions (a merge
//	lower than its predecessor); heights are reported as computed.
//
// Complexity: Build O(n³) time and O(n²) memory; Cut O(n).
package hierarchical
