// Package kmedoids implements PAM-style K-Medoids clustering.
//
// Unlike K-Means, every cluster representative is an actual instance (its
// medoid), so the algorithm only ever reads pairwise distances and works
// with any distance.Func: edit distance over strings, model-based HMM
// distance, or vector metrics alike.
//
// Algorithm:
//  1. Initial medoids: the explicit set from WithInitialMedoids, or k
//     distinct instances drawn from a seeded source. Medoids are kept in
//     ascending index order; cluster label c belongs to the c-th medoid.
//  2. Assign every instance to its nearest medoid (ties → lowest medoid).
//  3. For each cluster, search its members exhaustively for the one with
//     the smallest total distance to the other members. The current medoid
//     is replaced only by a strictly better member. Repeat 2–3 until no
//     medoid moves.
//  4. Swap: evaluate every (medoid, non-medoid) exchange and apply the one
//     with the lowest total cost if it strictly improves; go back to 2.
//     This lets a cluster medoid leave a group that holds two medoids.
//  5. Stop with clustering.Converged when no swap improves, or with
//     clustering.IterationLimitReached after MaxIterations rounds of 2–3.
//
// Once the initial medoids are fixed there is no randomness left: the same
// distances and initial set always produce the same labels.
//
// Input is the Distances capability (satisfied by *distance.Matrix), so
// the O(n²) distance evaluations happen once, outside the loop:
//
//	m, _ := distance.NewMatrix(ds, fn, distance.WithWorkers(4))
//	res, err := kmedoids.Cluster(m, 3, kmedoids.WithInitialMedoids(0, 4, 9))
//
// Complexity: per round O(n·k) for assignment and O(Σ|C|²) for the
// medoid search; per swap pass O(k²·(n−k)·n); memory O(n + k).
package kmedoids
