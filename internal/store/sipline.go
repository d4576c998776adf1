package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateSIPLineParams represents parameters for recording a provisioned line
type CreateSIPLineParams struct {
	Email           string
	PhoneNumber     string
	Provider        string
	Label           string
	MappedAgentName string
	InboundTrunkID  string
	OutboundTrunkID string
	DispatchRuleID  string
	AuthUsername    string
	AuthPassword    string
	SIPAddress      string
}

// UpdateSIPLineParams carries the re-provisioned resource identifiers
// and connection settings after an update.
type UpdateSIPLineParams struct {
	Provider        string
	Label           string
	MappedAgentName string
	InboundTrunkID  string
	OutboundTrunkID string
	DispatchRuleID  string
	AuthUsername    string
	AuthPassword    string
	SIPAddress      string
}

const sqlCreateSIPLine = `
INSERT INTO sip_lines (id, email, phone_number, provider, label, mapped_agent_name, inbound_trunk_id, outbound_trunk_id, dispatch_rule_id, auth_username, auth_password, sip_address, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, 'created')
RETURNING id, email, phone_number, provider, label, mapped_agent_name, inbound_trunk_id, outbound_trunk_id, dispatch_rule_id, auth_username, auth_password, sip_address, status, created_at, updated_at
`

// CreateSIPLine records a provisioned line for an owner's phone number
func (s *Store) CreateSIPLine(ctx context.Context, params CreateSIPLineParams) (SIPLine, error) {
	var line SIPLine
	err := s.db.GetContext(ctx, &line, sqlCreateSIPLine,
		uuid.New(),
		params.Email,
		params.PhoneNumber,
		params.Provider,
		params.Label,
		params.MappedAgentName,
		params.InboundTrunkID,
		params.OutboundTrunkID,
		params.DispatchRuleID,
		params.AuthUsername,
		params.AuthPassword,
		params.SIPAddress)
	if err != nil {
		s.logger.Error(ctx, "failed to create sip line", err)
		return SIPLine{}, fmt.Errorf("failed to create sip line: %w", err)
	}
	return line, nil
}

const sqlGetSIPLineByNumber = `
SELECT id, email, phone_number, provider, label, mapped_agent_name, inbound_trunk_id, outbound_trunk_id, dispatch_rule_id, auth_username, auth_password, sip_address, status, created_at, updated_at
FROM sip_lines
WHERE email = $1 AND phone_number = $2
`

// GetSIPLineByNumber resolves the line mapping for (owner, normalized number)
func (s *Store) GetSIPLineByNumber(ctx context.Context, email, phoneNumber string) (SIPLine, error) {
	var line SIPLine
	err := s.db.GetContext(ctx, &line, sqlGetSIPLineByNumber, email, phoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SIPLine{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get sip line", err)
		return SIPLine{}, fmt.Errorf("failed to get sip line: %w", err)
	}
	return line, nil
}

const sqlListSIPLinesByEmail = `
SELECT id, email, phone_number, provider, label, mapped_agent_name, inbound_trunk_id, outbound_trunk_id, dispatch_rule_id, auth_username, auth_password, sip_address, status, created_at, updated_at
FROM sip_lines
WHERE email = $1
ORDER BY created_at
`

// ListSIPLinesByEmail returns all provisioned lines owned by the email
func (s *Store) ListSIPLinesByEmail(ctx context.Context, email string) ([]SIPLine, error) {
	lines := []SIPLine{}
	err := s.db.SelectContext(ctx, &lines, sqlListSIPLinesByEmail, email)
	if err != nil {
		s.logger.Error(ctx, "failed to list sip lines", err)
		return nil, fmt.Errorf("failed to list sip lines: %w", err)
	}
	return lines, nil
}

const sqlUpdateMappedAgent = `
UPDATE sip_lines SET mapped_agent_name = $3, updated_at = now() WHERE email = $1 AND phone_number = $2
`

// UpdateMappedAgent maps an agent name onto an owner's line
func (s *Store) UpdateMappedAgent(ctx context.Context, email, phoneNumber, agentName string) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateMappedAgent, email, phoneNumber, agentName)
	if err != nil {
		s.logger.Error(ctx, "failed to update mapped agent", err)
		return fmt.Errorf("failed to update mapped agent: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update mapped agent: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUpdateSIPLine = `
UPDATE sip_lines
SET provider = $3,
    label = $4,
    mapped_agent_name = $5,
    inbound_trunk_id = $6,
    outbound_trunk_id = $7,
    dispatch_rule_id = $8,
    auth_username = $9,
    auth_password = $10,
    sip_address = $11,
    updated_at = now()
WHERE email = $1 AND phone_number = $2
RETURNING id, email, phone_number, provider, label, mapped_agent_name, inbound_trunk_id, outbound_trunk_id, dispatch_rule_id, auth_username, auth_password, sip_address, status, created_at, updated_at
`

// UpdateSIPLine replaces a line's provisioned resource identifiers
func (s *Store) UpdateSIPLine(ctx context.Context, email, phoneNumber string, params UpdateSIPLineParams) (SIPLine, error) {
	var line SIPLine
	err := s.db.GetContext(ctx, &line, sqlUpdateSIPLine,
		email,
		phoneNumber,
		params.Provider,
		params.Label,
		params.MappedAgentName,
		params.InboundTrunkID,
		params.OutboundTrunkID,
		params.DispatchRuleID,
		params.AuthUsername,
		params.AuthPassword,
		params.SIPAddress)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SIPLine{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update sip line", err)
		return SIPLine{}, fmt.Errorf("failed to update sip line: %w", err)
	}
	return line, nil
}

const sqlDeleteSIPLine = `
DELETE FROM sip_lines WHERE email = $1 AND phone_number = $2
`

// DeleteSIPLine removes the stored mapping after its provider
// resources have been deleted
func (s *Store) DeleteSIPLine(ctx context.Context, email, phoneNumber string) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteSIPLine, email, phoneNumber)
	if err != nil {
		s.logger.Error(ctx, "failed to delete sip line", err)
		return fmt.Errorf("failed to delete sip line: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete sip line: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
