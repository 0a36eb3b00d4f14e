// Package anticluster implements the reverse-k-means exchange heuristic:
// partition a set of feature vectors into K groups of fixed size so that the
// sum of within-group variance is maximized rather than minimized.
//
// Unlike mdgp, which works from a precomputed dissimilarity matrix,
// anticluster derives its pairwise term lazily as squared Euclidean distance
// from each item's feature vector, and tracks per-group centroids
// incrementally as items are exchanged between groups.
package anticluster
