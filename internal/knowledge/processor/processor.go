// Package processor manages agent knowledge bases: plain-text document
// upload, listing, deletion, and query-time retrieval through the LLM.
package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	openaiClient "voice-server/internal/clients/openai"
	"voice-server/internal/observability"
	"voice-server/internal/store"
)

var (
	// ErrFileNotFound indicates the filename is not in the agent's
	// knowledge base.
	ErrFileNotFound = errors.New("knowledge file not found")
	// ErrUnsupportedFileType indicates an upload with an extension the
	// knowledge base does not accept.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrKnowledgeBaseEmpty indicates the agent has no documents to
	// retrieve from.
	ErrKnowledgeBaseEmpty = errors.New("knowledge base is empty")
	// ErrRetrievalDisabled indicates the agent has retrieval turned off.
	ErrRetrievalDisabled = errors.New("retrieval disabled for agent")
	// ErrRetrievalFailed indicates the LLM retrieval call failed.
	ErrRetrievalFailed = errors.New("knowledge retrieval failed")
)

const (
	retrieveModel       = "gpt-4o-mini"
	retrieveTemperature = 0.0
	retrieveMaxTokens   = 1000

	// DefaultRetrievalLen is the number of passages returned when the
	// caller does not ask for a specific count.
	DefaultRetrievalLen = 5
)

// Documents are stored as text; extraction from binary formats is the
// caller's concern.
var supportedExtensions = map[string]struct{}{
	".txt": {},
	".md":  {},
	".csv": {},
}

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// KnowledgeStore persists knowledge base documents.
type KnowledgeStore interface {
	UpsertKnowledgeFile(ctx context.Context, agentID uuid.UUID, filename, content string) (store.KnowledgeFile, error)
	ListKnowledgeFiles(ctx context.Context, agentID uuid.UUID) ([]store.KnowledgeFile, error)
	GetKnowledgeContents(ctx context.Context, agentID uuid.UUID) ([]store.KnowledgeContent, error)
	DeleteKnowledgeFile(ctx context.Context, agentID uuid.UUID, filename string) error
}

// AgentStore resolves the agent owning the knowledge base.
type AgentStore interface {
	GetAgent(ctx context.Context, agentID uuid.UUID) (store.Agent, error)
}

// Completer runs one chat completion.
type Completer interface {
	Complete(ctx context.Context, model, systemPrompt string, messages []openaiClient.Message, temperature float64, maxTokens int) (openaiClient.Completion, error)
}

// KnowledgeProcessor owns the knowledge base surface of an agent.
type KnowledgeProcessor struct {
	store     KnowledgeStore
	agents    AgentStore
	completer Completer
	logger    *observability.Logger
}

// NewKnowledgeProcessor creates a KnowledgeProcessor.
func NewKnowledgeProcessor(knowledgeStore KnowledgeStore, agents AgentStore, completer Completer, logger *observability.Logger) KnowledgeProcessor {
	return KnowledgeProcessor{
		store:     knowledgeStore,
		agents:    agents,
		completer: completer,
		logger:    logger,
	}
}

// FileUpload is one document submitted for an agent.
type FileUpload struct {
	Filename string
	Content  string
}

// KnowledgeBase summarizes an agent's stored documents.
type KnowledgeBase struct {
	AgentID    uuid.UUID             `json:"agent_id"`
	RAGEnabled bool                  `json:"rag_enabled"`
	Files      []store.KnowledgeFile `json:"files"`
	TotalBytes int                   `json:"total_bytes"`
}

// RetrievalResult is the passages the model selected for a query.
type RetrievalResult struct {
	Query   string `json:"query"`
	Results string `json:"results"`
}

// UploadFiles stores the documents for the agent. Every file must carry
// a supported extension; nothing is stored when any file is rejected.
func (p KnowledgeProcessor) UploadFiles(ctx context.Context, agentID uuid.UUID, uploads []FileUpload) ([]store.KnowledgeFile, error) {
	if _, err := p.agents.GetAgent(ctx, agentID); err != nil {
		return nil, err
	}

	for _, upload := range uploads {
		ext := strings.ToLower(filepath.Ext(upload.Filename))
		if _, ok := supportedExtensions[ext]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, upload.Filename)
		}
	}

	files := make([]store.KnowledgeFile, 0, len(uploads))
	for _, upload := range uploads {
		file, err := p.store.UpsertKnowledgeFile(ctx, agentID, upload.Filename, upload.Content)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}

// ListFiles returns the metadata of the agent's documents.
func (p KnowledgeProcessor) ListFiles(ctx context.Context, agentID uuid.UUID) ([]store.KnowledgeFile, error) {
	if _, err := p.agents.GetAgent(ctx, agentID); err != nil {
		return nil, err
	}
	return p.store.ListKnowledgeFiles(ctx, agentID)
}

// DeleteFile removes one document from the agent's knowledge base.
func (p KnowledgeProcessor) DeleteFile(ctx context.Context, agentID uuid.UUID, filename string) error {
	if _, err := p.agents.GetAgent(ctx, agentID); err != nil {
		return err
	}
	err := p.store.DeleteKnowledgeFile(ctx, agentID, filename)
	if errors.Is(err, store.ErrNotFound) {
		return ErrFileNotFound
	}
	return err
}

// GetKnowledgeBase returns the agent's knowledge base summary.
func (p KnowledgeProcessor) GetKnowledgeBase(ctx context.Context, agentID uuid.UUID) (KnowledgeBase, error) {
	agent, err := p.agents.GetAgent(ctx, agentID)
	if err != nil {
		return KnowledgeBase{}, err
	}
	files, err := p.store.ListKnowledgeFiles(ctx, agentID)
	if err != nil {
		return KnowledgeBase{}, err
	}
	total := 0
	for _, file := range files {
		total += file.SizeBytes
	}
	return KnowledgeBase{
		AgentID:    agentID,
		RAGEnabled: agent.RAGEnabled,
		Files:      files,
		TotalBytes: total,
	}, nil
}

const retrievePromptFormat = "You select passages from reference documents. " +
	"Return the %d passages most relevant to the query, verbatim, one per line. " +
	"Return only passages that appear in the documents."

// Retrieve asks the model for the passages most relevant to the query.
// The agent must have retrieval enabled and at least one document.
func (p KnowledgeProcessor) Retrieve(ctx context.Context, agentID uuid.UUID, query string, retrievalLen int) (RetrievalResult, error) {
	agent, err := p.agents.GetAgent(ctx, agentID)
	if err != nil {
		return RetrievalResult{}, err
	}
	if !agent.RAGEnabled {
		return RetrievalResult{}, ErrRetrievalDisabled
	}

	contents, err := p.store.GetKnowledgeContents(ctx, agentID)
	if err != nil {
		return RetrievalResult{}, err
	}
	if len(contents) == 0 {
		return RetrievalResult{}, ErrKnowledgeBaseEmpty
	}

	if retrievalLen <= 0 {
		retrievalLen = DefaultRetrievalLen
	}

	var corpus strings.Builder
	for _, doc := range contents {
		fmt.Fprintf(&corpus, "--- %s ---\n%s\n", doc.Filename, doc.Content)
	}
	corpus.WriteString("\nQuery: ")
	corpus.WriteString(query)

	systemPrompt := fmt.Sprintf(retrievePromptFormat, retrievalLen)
	messages := []openaiClient.Message{{Role: "user", Content: corpus.String()}}

	completion, err := p.completer.Complete(ctx, retrieveModel, systemPrompt, messages, retrieveTemperature, retrieveMaxTokens)
	if err != nil {
		p.logger.Error(ctx, "knowledge retrieval failed", err)
		return RetrievalResult{}, fmt.Errorf("%w: %v", ErrRetrievalFailed, err)
	}

	return RetrievalResult{Query: query, Results: completion.Content}, nil
}
