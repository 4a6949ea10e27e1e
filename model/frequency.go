package model

// FrequencyModel maps tokens to occurrence counts in a reference corpus.
//
// VocabularySize and TotalTokenCount are computed once at construction.
// Tokens with a zero count are not stored, so every stored token occurs at
// least once and TotalTokenCount >= VocabularySize.
type FrequencyModel struct {
	counts     map[string]uint64
	vocabulary uint64
	total      uint64
}

// NewFrequencyModel takes ownership of counts.
func NewFrequencyModel(counts map[string]uint64) (*FrequencyModel, error) {
	m := &FrequencyModel{counts: counts}
	for token, n := range counts {
		if n == 0 {
			delete(counts, token)
			continue
		}
		m.total += n
	}
	m.vocabulary = uint64(len(counts))
	if m.vocabulary == 0 {
		return nil, ErrEmptyModel
	}
	return m, nil
}

// Count returns the number of occurrences of token, 0 if unseen.
func (m *FrequencyModel) Count(token string) uint64 {
	return m.counts[token]
}

// VocabularySize returns the number of distinct tokens.
func (m *FrequencyModel) VocabularySize() uint64 {
	return m.vocabulary
}

// TotalTokenCount returns the sum of all counts.
func (m *FrequencyModel) TotalTokenCount() uint64 {
	return m.total
}

// Counter tallies token occurrences. It is not safe for concurrent use;
// count shards independently and Merge them.
type Counter map[string]uint64

// Add counts one occurrence of token.
func (c Counter) Add(token string) {
	c[token]++
}

// Merge adds all counts from other into c.
func (c Counter) Merge(other Counter) {
	for token, n := range other {
		c[token] += n
	}
}

// Model freezes the counter into a FrequencyModel.
// The counter must not be used afterwards.
func (c Counter) Model() (*FrequencyModel, error) {
	return NewFrequencyModel(c)
}
