package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const sqlUpsertKnowledgeFile = `
INSERT INTO knowledge_files (id, agent_id, filename, content, size_bytes)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (agent_id, filename)
DO UPDATE SET content = $4, size_bytes = $5, updated_at = now()
RETURNING id, agent_id, filename, size_bytes, created_at, updated_at
`

// UpsertKnowledgeFile stores a document for an agent, replacing the
// content when the filename is already present.
func (s *Store) UpsertKnowledgeFile(ctx context.Context, agentID uuid.UUID, filename, content string) (KnowledgeFile, error) {
	var file KnowledgeFile
	err := s.db.GetContext(ctx, &file, sqlUpsertKnowledgeFile, uuid.New(), agentID, filename, content, len(content))
	if err != nil {
		s.logger.Error(ctx, "failed to upsert knowledge file", err)
		return KnowledgeFile{}, fmt.Errorf("failed to upsert knowledge file: %w", err)
	}
	return file, nil
}

const sqlListKnowledgeFiles = `
SELECT id, agent_id, filename, size_bytes, created_at, updated_at
FROM knowledge_files
WHERE agent_id = $1
ORDER BY filename
`

// ListKnowledgeFiles returns the metadata of an agent's documents.
func (s *Store) ListKnowledgeFiles(ctx context.Context, agentID uuid.UUID) ([]KnowledgeFile, error) {
	files := []KnowledgeFile{}
	err := s.db.SelectContext(ctx, &files, sqlListKnowledgeFiles, agentID)
	if err != nil {
		s.logger.Error(ctx, "failed to list knowledge files", err)
		return nil, fmt.Errorf("failed to list knowledge files: %w", err)
	}
	return files, nil
}

const sqlGetKnowledgeContents = `
SELECT filename, content
FROM knowledge_files
WHERE agent_id = $1
ORDER BY filename
`

// GetKnowledgeContents loads the stored text of an agent's documents.
func (s *Store) GetKnowledgeContents(ctx context.Context, agentID uuid.UUID) ([]KnowledgeContent, error) {
	contents := []KnowledgeContent{}
	err := s.db.SelectContext(ctx, &contents, sqlGetKnowledgeContents, agentID)
	if err != nil {
		s.logger.Error(ctx, "failed to get knowledge contents", err)
		return nil, fmt.Errorf("failed to get knowledge contents: %w", err)
	}
	return contents, nil
}

const sqlDeleteKnowledgeFile = `
DELETE FROM knowledge_files WHERE agent_id = $1 AND filename = $2
`

// DeleteKnowledgeFile removes one document from an agent's knowledge
// base. Returns ErrNotFound when the filename is not stored.
func (s *Store) DeleteKnowledgeFile(ctx context.Context, agentID uuid.UUID, filename string) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteKnowledgeFile, agentID, filename)
	if err != nil {
		s.logger.Error(ctx, "failed to delete knowledge file", err)
		return fmt.Errorf("failed to delete knowledge file: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete knowledge file: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
