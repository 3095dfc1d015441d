package edge

import "github.com/yourusername/gridiron-edge/internal/models"

// bucketRow ties an edge-magnitude band to its calibrated win probability.
// The probabilities feed the stake sizer directly; the bands were validated
// together with the injury severity breakpoints.
type bucketRow struct {
	minEdge float64
	bucket  models.ConfidenceBucket
	winProb float64
}

// bucketTable is ordered from strongest to weakest band
var bucketTable = []bucketRow{
	{7.0, models.BucketVeryStrong, 0.77},
	{4.0, models.BucketStrong, 0.64},
	{2.0, models.BucketModerate, 0.58},
	{1.0, models.BucketLean, 0.54},
	{0.0, models.BucketNoPlay, 0.52},
}

// ClassifyEdge maps an edge magnitude (plus any key-number bonus) onto a
// confidence bucket and its win probability
func ClassifyEdge(absEdge float64) (models.ConfidenceBucket, float64) {
	if absEdge < 0 {
		absEdge = 0
	}
	for _, row := range bucketTable {
		if absEdge >= row.minEdge {
			return row.bucket, row.winProb
		}
	}
	return models.BucketNoPlay, 0.52
}

// WinProbability returns the calibrated win probability for a bucket.
// Unknown buckets map to NO_PLAY rather than failing.
func WinProbability(bucket models.ConfidenceBucket) float64 {
	for _, row := range bucketTable {
		if row.bucket == bucket {
			return row.winProb
		}
	}
	return 0.52
}
