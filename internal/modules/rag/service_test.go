package rag

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"drivemind/internal/pkg/vector"
)

type mockEmbedder struct {
	mock.Mock
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	args := m.Called(ctx, texts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]float32), args.Error(1)
}

type mockIndex struct {
	mock.Mock
}

func (m *mockIndex) Upsert(ctx context.Context, items []vector.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *mockIndex) Query(ctx context.Context, values []float32, topK int) ([]string, error) {
	args := m.Called(ctx, values, topK)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, question string, contextChunks []string) (string, error) {
	args := m.Called(ctx, question, contextChunks)
	return args.String(0), args.Error(1)
}

func embeddingsOfLen(n int) [][]float32 {
	out := make([][]float32, n)
	for i := range out {
		out[i] = []float32{float32(i), 0.5}
	}
	return out
}

func TestChunkText_SplitsFixedSize(t *testing.T) {
	text := strings.Repeat("a", 1200)

	chunks := chunkText(text, "doc.pdf")

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0].Text, 500)
	assert.Len(t, chunks[1].Text, 500)
	assert.Len(t, chunks[2].Text, 200)

	seen := map[string]bool{}
	for _, chunk := range chunks {
		assert.False(t, seen[chunk.ID], "chunk ids must be unique")
		seen[chunk.ID] = true
		assert.Equal(t, "doc.pdf", chunk.Filename)
	}
}

func TestChunkText_CountsCharactersNotBytes(t *testing.T) {
	// 400 two-byte runes fit in a single 500-character chunk even though the
	// text is 800 bytes long.
	chunks := chunkText(strings.Repeat("é", 400), "doc.pdf")
	require.Len(t, chunks, 1)
	assert.Equal(t, 400, utf8.RuneCountInString(chunks[0].Text))

	// A three-byte rune at the boundary must not be split: every chunk stays
	// valid UTF-8 and reassembles to the original text.
	chunks = chunkText(strings.Repeat("中", 700), "doc.pdf")
	require.Len(t, chunks, 2)
	assert.Equal(t, 500, utf8.RuneCountInString(chunks[0].Text))
	assert.Equal(t, 200, utf8.RuneCountInString(chunks[1].Text))
	for _, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk.Text))
	}
	assert.Equal(t, strings.Repeat("中", 700), chunks[0].Text+chunks[1].Text)
}

func TestChunkText_Empty(t *testing.T) {
	assert.Empty(t, chunkText("", "doc.pdf"))
}

func TestChunkText_ExactMultiple(t *testing.T) {
	chunks := chunkText(strings.Repeat("b", 1000), "doc.pdf")
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0].Text, 500)
	assert.Len(t, chunks[1].Text, 500)
}

func TestService_Answer(t *testing.T) {
	embedder := new(mockEmbedder)
	index := new(mockIndex)
	generator := new(mockGenerator)

	questionVec := []float32{0.1, 0.2}
	embedder.On("Embed", mock.Anything, []string{"what is the budget?"}).
		Return([][]float32{questionVec}, nil)
	index.On("Query", mock.Anything, questionVec, 5).
		Return([]string{"chunk one", "chunk two"}, nil)
	generator.On("Generate", mock.Anything, "what is the budget?", []string{"chunk one", "chunk two"}).
		Return("the budget is 42", nil)

	service := NewService(t.TempDir(), embedder, index, generator, nil)

	answer, err := service.Answer(context.Background(), "what is the budget?")

	require.NoError(t, err)
	assert.Equal(t, "the budget is 42", answer)
	embedder.AssertExpectations(t)
	index.AssertExpectations(t)
	generator.AssertExpectations(t)
}

func TestService_Answer_EmbedErrorPropagates(t *testing.T) {
	embedder := new(mockEmbedder)
	index := new(mockIndex)
	generator := new(mockGenerator)

	embedder.On("Embed", mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	service := NewService(t.TempDir(), embedder, index, generator, nil)

	_, err := service.Answer(context.Background(), "q")

	assert.ErrorIs(t, err, assert.AnError)
	index.AssertNotCalled(t, "Query", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ReindexAll_ChunksAndUpserts(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "report.pdf"), []byte("%PDF"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	embedder := new(mockEmbedder)
	index := new(mockIndex)

	extract := func(path string) (string, error) {
		assert.Equal(t, filepath.Join(dir, "report.pdf"), path)
		return strings.Repeat("x", 1200), nil
	}

	embedder.On("Embed", mock.Anything, mock.MatchedBy(func(texts []string) bool {
		return len(texts) == 3
	})).Return(embeddingsOfLen(3), nil)

	index.On("Upsert", mock.Anything, mock.MatchedBy(func(items []vector.Item) bool {
		if len(items) != 3 {
			return false
		}
		return len(items[0].Text) == 500 && len(items[2].Text) == 200 && items[0].ID != items[1].ID
	})).Return(nil)

	service := NewService(dir, embedder, index, new(mockGenerator), extract)

	require.NoError(t, service.ReindexAll(context.Background()))
	embedder.AssertExpectations(t)
	index.AssertExpectations(t)
}

func TestService_ReindexAll_EmptyDirIsNoop(t *testing.T) {
	embedder := new(mockEmbedder)
	index := new(mockIndex)

	service := NewService(t.TempDir(), embedder, index, new(mockGenerator), nil)

	require.NoError(t, service.ReindexAll(context.Background()))
	embedder.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything)
	index.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestService_IngestAndAnswer(t *testing.T) {
	dir := t.TempDir()

	embedder := new(mockEmbedder)
	index := new(mockIndex)
	generator := new(mockGenerator)

	extract := func(path string) (string, error) {
		return strings.Repeat("y", 600), nil
	}

	// Re-index pass: two chunks from the freshly saved file.
	embedder.On("Embed", mock.Anything, mock.MatchedBy(func(texts []string) bool {
		return len(texts) == 2
	})).Return(embeddingsOfLen(2), nil).Once()
	index.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	// Retrieval pass.
	embedder.On("Embed", mock.Anything, []string{"summarize"}).
		Return(embeddingsOfLen(1), nil).Once()
	index.On("Query", mock.Anything, mock.Anything, 5).
		Return([]string{"relevant"}, nil).Once()
	generator.On("Generate", mock.Anything, "summarize", []string{"relevant"}).
		Return("a summary", nil)

	service := NewService(dir, embedder, index, generator, extract)

	answer, err := service.IngestAndAnswer(context.Background(), strings.NewReader("%PDF fake"), "upload.pdf", "summarize")

	require.NoError(t, err)
	assert.Equal(t, "a summary", answer)

	// The uploaded bytes landed in the blob area under the original name.
	saved, err := os.ReadFile(filepath.Join(dir, "upload.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF fake", string(saved))

	embedder.AssertExpectations(t)
	index.AssertExpectations(t)
	generator.AssertExpectations(t)
}
