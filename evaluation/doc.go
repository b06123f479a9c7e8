// Package evaluation scores a predicted partition against a ground-truth
// partition by counting instance pairs.
//
// Every unordered pair {i, j} falls in exactly one of four cells:
//
//	                      truth: same    truth: different
//	predicted: same         n11              n10
//	predicted: different    n01              n00
//
// The counts come from the contingency table of the two labelings in
// O(n + cells) time; pairs are never enumerated.
//
// Metrics:
//
//   - Rand Index       (n11 + n00) / C(n,2). 1 means perfect agreement.
//   - Adjusted Rand    Rand Index corrected for chance with the
//     Hubert–Arabie expectation. 1 is perfect, about 0 for independent
//     random labelings, negative for worse than chance.
//   - Collapsed Pairs  n10 / (n10 + n00): the share of pairs the ground
//     truth separates that the prediction collapses into one cluster.
//     0 means no distinction was lost.
//
// Labels are compared only for equality; they need not be dense or share
// a range between the two assignments. Both assignments must cover the
// same index set (equal length) or ErrIncompatibleInput is returned.
package evaluation
