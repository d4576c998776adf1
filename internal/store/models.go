package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a single turn in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatMessages is a custom type for a JSONB message list
type ChatMessages []ChatMessage

// Value implements the driver.Valuer interface for ChatMessages
func (m ChatMessages) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for ChatMessages
func (m *ChatMessages) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for ChatMessages")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*m = ChatMessages{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	// PostgreSQL array format: {item1,item2,item3}; elements holding
	// delimiters, quotes or whitespace must be double-quoted.
	elements := make([]string, len(a))
	for i, element := range a {
		elements[i] = quoteArrayElement(element)
	}
	return "{" + strings.Join(elements, ",") + "}", nil
}

func quoteArrayElement(element string) string {
	if element != "" && !strings.ContainsAny(element, `,{}"\ `) {
		return element
	}
	escaped := strings.ReplaceAll(element, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}

	// Handle empty array
	if str == "" || str == "{}" {
		*a = []string{}
		return nil
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}

	*a = parseArrayElements(str)
	return nil
}

// parseArrayElements splits the inner text of an array literal,
// honoring double-quoted elements and backslash escapes.
func parseArrayElements(str string) []string {
	elements := []string{}
	var current strings.Builder
	inQuotes := false
	escaped := false
	for _, r := range str {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			elements = append(elements, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	elements = append(elements, current.String())
	return elements
}

// Contains reports whether the array holds the given value.
func (a StringArray) Contains(value string) bool {
	for _, v := range a {
		if v == value {
			return true
		}
	}
	return false
}

// CampaignStatus represents the campaign lifecycle state
type CampaignStatus string

const (
	CampaignStatusCreated   CampaignStatus = "created"
	CampaignStatusRunning   CampaignStatus = "running"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusFailed    CampaignStatus = "failed"
	CampaignStatusNoNumbers CampaignStatus = "no_numbers"
)

// Campaign is a batch of outbound-call targets tied to one agent phone number.
// phone_numbers and called_numbers always hold normalized numbers.
type Campaign struct {
	CampaignID          uuid.UUID      `db:"campaign_id" json:"campaign_id"`
	Email               string         `db:"email" json:"email"`
	CampaignName        string         `db:"campaign_name" json:"campaign_name"`
	CampaignDescription *string        `db:"campaign_description" json:"campaign_description,omitempty"`
	AgentPhoneNumber    string         `db:"agent_phone_number" json:"agent_phone_number"`
	PhoneNumbers        StringArray    `db:"phone_numbers" json:"phone_numbers"`
	CalledNumbers       StringArray    `db:"called_numbers" json:"called_numbers"`
	Status              CampaignStatus `db:"status" json:"status"`
	CreatedAt           time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time      `db:"updated_at" json:"updated_at"`
}

// SIPLine maps an owner's phone number to its provisioned telephony
// resources. The dispatcher reads it to resolve the outbound trunk.
type SIPLine struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Email            string    `db:"email" json:"email"`
	PhoneNumber      string    `db:"phone_number" json:"phone_number"`
	Provider         string    `db:"provider" json:"provider"`
	Label            string    `db:"label" json:"label"`
	MappedAgentName  string    `db:"mapped_agent_name" json:"mapped_agent_name"`
	InboundTrunkID   string    `db:"inbound_trunk_id" json:"inbound_trunk_id"`
	OutboundTrunkID  string    `db:"outbound_trunk_id" json:"outbound_trunk_id"`
	DispatchRuleID   string    `db:"dispatch_rule_id" json:"dispatch_rule_id"`
	AuthUsername     string    `db:"auth_username" json:"auth_username"`
	AuthPassword     string    `db:"auth_password" json:"-"`
	SIPAddress       string    `db:"sip_address" json:"sip_address"`
	Status           string    `db:"status" json:"status"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// User owns agents and campaigns, keyed by email.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Agent is a configured AI assistant attached to a user.
type Agent struct {
	ID                      uuid.UUID `db:"id" json:"id"`
	UserID                  uuid.UUID `db:"user_id" json:"user_id"`
	AgentName               string    `db:"agent_name" json:"agent_name"`
	PhoneNumber             string    `db:"phone_number" json:"phone_number"`
	LLMProvider             string    `db:"llm_provider" json:"llm_provider"`
	LLMModel                string    `db:"llm_model" json:"llm_model"`
	STTProvider             string    `db:"stt_provider" json:"stt_provider"`
	STTModel                string    `db:"stt_model" json:"stt_model"`
	TTSProvider             string    `db:"tts_provider" json:"tts_provider"`
	Voice                   string    `db:"voice" json:"voice"`
	Language                string    `db:"language" json:"language"`
	Temperature             float64   `db:"temperature" json:"temperature"`
	MaxTokens               int       `db:"max_tokens" json:"max_tokens"`
	FirstMessage            string    `db:"first_message" json:"first_message"`
	SystemPrompt            string    `db:"system_prompt" json:"system_prompt"`
	RAGEnabled              bool      `db:"rag_enabled" json:"rag_enabled"`
	AgentType               string    `db:"agent_type" json:"agent_type"`
	BackgroundNoise         *string   `db:"background_noise" json:"background_noise,omitempty"`
	TTSSpeed                float64   `db:"tts_speed" json:"tts_speed"`
	InterruptSpeechDuration float64   `db:"interrupt_speech_duration" json:"interrupt_speech_duration"`
	CreatedAt               time.Time `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time `db:"updated_at" json:"updated_at"`
}

// KnowledgeFile is one document in an agent's knowledge base. Content
// is stored alongside the metadata and only loaded for retrieval.
type KnowledgeFile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	AgentID   uuid.UUID `db:"agent_id" json:"agent_id"`
	Filename  string    `db:"filename" json:"filename"`
	SizeBytes int       `db:"size_bytes" json:"size_bytes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// KnowledgeContent pairs a filename with its stored text.
type KnowledgeContent struct {
	Filename string `db:"filename" json:"filename"`
	Content  string `db:"content" json:"content"`
}

// CallLog records one completed call with usage and cost breakdown.
type CallLog struct {
	CallLogID            uuid.UUID `db:"call_log_id" json:"call_log_id"`
	UserID               string    `db:"user_id" json:"user_id"`
	AgentID              *string   `db:"agent_id" json:"agent_id,omitempty"`
	AgentName            *string   `db:"agent_name" json:"agent_name,omitempty"`
	AgentPhoneNumber     *string   `db:"agent_phone_number" json:"agent_phone_number,omitempty"`
	CalledNumber         *string   `db:"called_number" json:"called_number,omitempty"`
	CallDirection        string    `db:"call_direction" json:"call_direction"`
	CallType             string    `db:"call_type" json:"call_type"`
	StartTime            time.Time `db:"start_time" json:"start_time"`
	EndTime              time.Time `db:"end_time" json:"end_time"`
	Duration             float64   `db:"duration" json:"duration"`
	TotalTokensLLM       int       `db:"total_tokens_llm" json:"total_tokens_llm"`
	TotalTokensSTT       int       `db:"total_tokens_stt" json:"total_tokens_stt"`
	TotalTokensTTS       int       `db:"total_tokens_tts" json:"total_tokens_tts"`
	CostLLM              float64   `db:"cost_llm" json:"cost_llm"`
	CostSTT              float64   `db:"cost_stt" json:"cost_stt"`
	CostTTS              float64   `db:"cost_tts" json:"cost_tts"`
	PlatformCost         float64   `db:"platform_cost" json:"platform_cost"`
	TotalCost            float64   `db:"total_cost" json:"total_cost"`
	ConversationAnalysis *string   `db:"conversation_analysis" json:"conversation_analysis,omitempty"`
}

// ChatLog records a chat conversation with its accumulated usage.
type ChatLog struct {
	ChatID      uuid.UUID    `db:"chat_id" json:"chat_id"`
	UserID      string       `db:"user_id" json:"user_id"`
	AgentID     string       `db:"agent_id" json:"agent_id"`
	AgentName   *string      `db:"agent_name" json:"agent_name,omitempty"`
	ChatData    ChatMessages `db:"chat_data" json:"chat_data"`
	Result      string       `db:"result" json:"result"`
	TotalTokens int          `db:"total_tokens" json:"total_tokens"`
	CostLLM     float64      `db:"cost_llm" json:"cost_llm"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}
