package classifier

import "trend_sentinel/internal/domain"

// FormBatches partitions candidates into batches of at most maxBatchSize,
// preserving input order. The concatenation of all batches is exactly the
// input. A size below 1 is treated as 1.
func FormBatches(candidates []domain.Candidate, maxBatchSize int) [][]domain.Candidate {
	if len(candidates) == 0 {
		return nil
	}
	if maxBatchSize < 1 {
		maxBatchSize = 1
	}

	batches := make([][]domain.Candidate, 0, (len(candidates)+maxBatchSize-1)/maxBatchSize)
	for start := 0; start < len(candidates); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		batches = append(batches, candidates[start:end])
	}

	return batches
}
