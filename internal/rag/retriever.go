package rag

import (
	"context"
	"fmt"
	"math"
	"sort"

	"salescope/internal/knowledge"
	"salescope/internal/llm"
)

// Retriever ranks the schema corpus by semantic similarity to a question.
// Corpus embeddings are computed once at construction; the corpus itself is
// read-only, so Retrieve is safe for concurrent use.
type Retriever struct {
	embedder llm.Embedder
	corpus   []knowledge.Snippet
	vectors  [][]float32
}

// NewRetriever embeds the corpus up front. An embedding backend failure here
// is reported as ErrRetrieverUnavailable.
func NewRetriever(ctx context.Context, embedder llm.Embedder, corpus []knowledge.Snippet) (*Retriever, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("knowledge corpus is empty")
	}

	texts := make([]string, len(corpus))
	for i, s := range corpus {
		texts[i] = s.Text
	}

	vectors, err := embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding corpus: %v: %w", err, ErrRetrieverUnavailable)
	}
	if len(vectors) != len(corpus) {
		return nil, fmt.Errorf("embedding corpus: got %d vectors for %d snippets: %w",
			len(vectors), len(corpus), ErrRetrieverUnavailable)
	}

	return &Retriever{embedder: embedder, corpus: corpus, vectors: vectors}, nil
}

// Retrieve returns the top-k snippets for the question, highest similarity
// first. Ties keep corpus insertion order.
func (r *Retriever) Retrieve(ctx context.Context, question string, k int) (Context, error) {
	if k < 1 || k > len(r.corpus) {
		return nil, fmt.Errorf("k must be between 1 and %d, got %d", len(r.corpus), k)
	}

	queryVec, err := r.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embedding question: %v: %w", err, ErrRetrieverUnavailable)
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(r.corpus))
	for i, vec := range r.vectors {
		ranked[i] = scored{index: i, score: cosineSimilarity(queryVec, vec)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make(Context, k)
	for i := 0; i < k; i++ {
		result[i] = r.corpus[ranked[i].index]
	}
	return result, nil
}

// cosineSimilarity returns the cosine of the angle between two vectors, or 0
// when the dimensions differ or either vector has zero magnitude.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
