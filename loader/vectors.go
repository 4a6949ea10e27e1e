package loader

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/lexfeat/blobstore"
	"github.com/hupe1980/lexfeat/model"
	"github.com/hupe1980/lexfeat/sqlitevec"
	"github.com/hupe1980/lexfeat/word2vec"
	"github.com/ynqa/wego/pkg/embedding"
)

// entryOverhead approximates the per-token bytes of a loaded vector table
// beyond the float32 components (map slot, string header and token bytes).
const entryOverhead = 64

// VectorSource describes a vector resource.
type VectorSource struct {
	Store blobstore.BlobStore
	Name  string
	// Format defaults to word2vec-bin.
	Format Format
	// Limit keeps only the first Limit entries. 0 keeps all.
	Limit int
	// Table names the SQLite table. Defaults to sqlitevec.DefaultTable.
	Table string
}

// LoadVectors decodes a vector model. Memory for the decoded table is
// reserved against the resource controller and stays reserved.
func LoadVectors(ctx context.Context, src VectorSource, opts ...Option) (*model.VectorModel, error) {
	o := applyOptions(opts)

	format, err := ParseFormat(string(src.Format))
	if err != nil {
		return nil, err
	}

	var m *model.VectorModel
	switch format {
	case FormatWord2VecBinary, FormatWord2VecText:
		m, err = loadWord2Vec(ctx, src, format == FormatWord2VecBinary, o)
	case FormatWego:
		m, err = loadWego(ctx, src, o)
	case FormatSQLite:
		m, err = loadSQLite(ctx, src, o)
	}
	if err != nil {
		return nil, fmt.Errorf("loader: %s %s: %w", format, src.Name, err)
	}
	return m, nil
}

func tableBytes(entries, dim int) int64 {
	return int64(entries) * (int64(dim)*4 + entryOverhead)
}

func loadWord2Vec(ctx context.Context, src VectorSource, binary bool, o options) (m *model.VectorModel, err error) {
	s, err := openStream(ctx, src.Store, src.Name, o.resources)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, s.Close()) }()

	r, err := word2vec.NewReader(s, word2vec.Options{Binary: binary, Limit: src.Limit})
	if err != nil {
		return nil, err
	}
	h := r.Header()

	reserved := tableBytes(r.Remaining(), h.Dim)
	if err := o.resources.ReserveMemory(reserved); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			o.resources.ReleaseMemory(reserved)
		}
	}()

	b, err := model.NewVectorBuilder(h.Dim, r.Remaining())
	if err != nil {
		return nil, err
	}
	for n := 0; ; n++ {
		if n%8192 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		token, vec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if _, err := b.Add(token, vec); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func loadWego(ctx context.Context, src VectorSource, o options) (m *model.VectorModel, err error) {
	s, err := openStream(ctx, src.Store, src.Name, o.resources)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, s.Close()) }()

	embs, err := embedding.Load(s)
	if err != nil {
		return nil, err
	}
	if src.Limit > 0 && len(embs) > src.Limit {
		embs = embs[:src.Limit]
	}
	if len(embs) == 0 {
		return nil, model.ErrEmptyModel
	}

	dim := len(embs[0].Vector)
	if err := o.resources.ReserveMemory(tableBytes(len(embs), dim)); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			o.resources.ReleaseMemory(tableBytes(len(embs), dim))
		}
	}()

	b, err := model.NewVectorBuilder(dim, len(embs))
	if err != nil {
		return nil, err
	}
	slab := make([]float32, len(embs)*dim)
	for i, e := range embs {
		if len(e.Vector) != dim {
			return nil, &model.ErrDimensionMismatch{Token: e.Word, Expected: dim, Actual: len(e.Vector)}
		}
		vec := slab[i*dim : (i+1)*dim : (i+1)*dim]
		for j, f := range e.Vector {
			vec[j] = float32(f)
		}
		if _, err := b.Add(e.Word, vec); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func loadSQLite(ctx context.Context, src VectorSource, o options) (*model.VectorModel, error) {
	path, cleanup, err := stageFile(ctx, src.Store, src.Name, o)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	db, err := sqlitevec.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	m, err := sqlitevec.Load(ctx, db, sqlitevec.Options{Table: src.Table, Limit: src.Limit})
	if err != nil {
		return nil, err
	}
	if err := o.resources.ReserveMemory(tableBytes(m.Len(), m.Dim())); err != nil {
		return nil, err
	}
	return m, nil
}
