package model

import "fmt"

// VectorModel maps tokens to fixed-length float32 vectors.
// Every vector has exactly Dim() components.
type VectorModel struct {
	dim     int
	vectors map[string][]float32
}

// NewVectorModel validates vectors and takes ownership of the map.
// The caller must not modify the map or its slices afterwards.
func NewVectorModel(dim int, vectors map[string][]float32) (*VectorModel, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	if len(vectors) == 0 {
		return nil, ErrEmptyModel
	}
	for token, vec := range vectors {
		if len(vec) != dim {
			return nil, &ErrDimensionMismatch{Token: token, Expected: dim, Actual: len(vec)}
		}
	}
	return &VectorModel{dim: dim, vectors: vectors}, nil
}

// Dim returns the dimensionality shared by all vectors.
func (m *VectorModel) Dim() int {
	return m.dim
}

// Len returns the number of tokens.
func (m *VectorModel) Len() int {
	return len(m.vectors)
}

// Vector returns the vector for token.
// The returned slice is shared with the model and must be treated as read-only.
func (m *VectorModel) Vector(token string) ([]float32, bool) {
	vec, ok := m.vectors[token]
	return vec, ok
}

// VectorBuilder accumulates entries for a VectorModel.
// The first vector added for a token wins; later duplicates are ignored.
type VectorBuilder struct {
	dim     int
	vectors map[string][]float32
}

// NewVectorBuilder creates a builder for dim-dimensional vectors.
// sizeHint pre-sizes the table and may be 0.
func NewVectorBuilder(dim, sizeHint int) (*VectorBuilder, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, dim)
	}
	return &VectorBuilder{dim: dim, vectors: make(map[string][]float32, max(sizeHint, 0))}, nil
}

// Add stores vec for token. It reports whether the token was new.
func (b *VectorBuilder) Add(token string, vec []float32) (bool, error) {
	if len(vec) != b.dim {
		return false, &ErrDimensionMismatch{Token: token, Expected: b.dim, Actual: len(vec)}
	}
	if _, ok := b.vectors[token]; ok {
		return false, nil
	}
	b.vectors[token] = vec
	return true, nil
}

// Len returns the number of distinct tokens added so far.
func (b *VectorBuilder) Len() int {
	return len(b.vectors)
}

// Build returns the finished model. The builder must not be used afterwards.
func (b *VectorBuilder) Build() (*VectorModel, error) {
	m, err := NewVectorModel(b.dim, b.vectors)
	b.vectors = nil
	return m, err
}
