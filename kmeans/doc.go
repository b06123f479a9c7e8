// Package kmeans implements centroid-based K-Means over numeric datasets.
//
// What:
//
//	Partition n instances into k clusters around computed centroids
//	(attribute-wise means), measuring instance-to-centroid closeness with any
//	distance.Vector (Euclidean, Manhattan, DTW).
//
// Algorithm (Lloyd iterations):
//  1. Initialise k centroids from k distinct instances: explicit via
//     WithInitialCentroids, otherwise sampled uniformly without replacement
//     from a seeded source.
//  2. Assign every instance to the nearest centroid; ties go to the lowest
//     cluster index.
//  3. If no instance changed cluster, stop with clustering.Converged.
//  4. Recompute each centroid as the mean of its members. A cluster that
//     became empty keeps its previous centroid.
//  5. Repeat from 2 at most MaxIterations times; hitting the cap returns the
//     last complete assignment with clustering.IterationLimitReached.
//
// Errors (all wrap clustering.ErrConfiguration):
//   - clustering.ErrInvalidK for k ∉ [1, n];
//   - clustering.ErrIncompatibleDistance for a distance that is not a
//     distance.Vector, or a dataset with non-numeric attributes;
//   - clustering.ErrInvalidIterations, clustering.ErrInvalidMedoids.
//
// Empty clusters are reported, not repaired: compare Result.Distinct() with
// Result.K.
//
// Complexity: O(I · n · k · d) time, O(n·d + k·d) memory.
package kmeans
