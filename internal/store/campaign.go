package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Email               string
	CampaignName        string
	CampaignDescription *string
	AgentPhoneNumber    string
	PhoneNumbers        StringArray
}

// UpdateCampaignParams represents parameters for updating a campaign
type UpdateCampaignParams struct {
	CampaignName        *string
	CampaignDescription *string
	AgentPhoneNumber    *string
}

const sqlCreateCampaign = `
INSERT INTO campaigns (campaign_id, email, campaign_name, campaign_description, agent_phone_number, phone_numbers, called_numbers, status)
VALUES ($1, $2, $3, $4, $5, $6, '{}', 'created')
RETURNING campaign_id, email, campaign_name, campaign_description, agent_phone_number, phone_numbers, called_numbers, status, created_at, updated_at
`

// CreateCampaign creates a new campaign in status 'created' with no
// numbers called yet
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	if params.PhoneNumbers == nil {
		params.PhoneNumbers = StringArray{}
	}
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		uuid.New(),
		params.Email,
		params.CampaignName,
		params.CampaignDescription,
		params.AgentPhoneNumber,
		params.PhoneNumbers)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaign = `
SELECT campaign_id, email, campaign_name, campaign_description, agent_phone_number, phone_numbers, called_numbers, status, created_at, updated_at
FROM campaigns
WHERE campaign_id = $1 AND email = $2
`

// GetCampaign fetches a campaign scoped to its owner
func (s *Store) GetCampaign(ctx context.Context, campaignID uuid.UUID, email string) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaign, campaignID, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlListCampaignsByEmail = `
SELECT campaign_id, email, campaign_name, campaign_description, agent_phone_number, phone_numbers, called_numbers, status, created_at, updated_at
FROM campaigns
WHERE email = $1
ORDER BY created_at DESC
`

// ListCampaignsByEmail returns all campaigns owned by the given email
func (s *Store) ListCampaignsByEmail(ctx context.Context, email string) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignsByEmail, email)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET campaign_name = COALESCE($3, campaign_name),
    campaign_description = COALESCE($4, campaign_description),
    agent_phone_number = COALESCE($5, agent_phone_number),
    updated_at = now()
WHERE campaign_id = $1 AND email = $2
RETURNING campaign_id, email, campaign_name, campaign_description, agent_phone_number, phone_numbers, called_numbers, status, created_at, updated_at
`

// UpdateCampaign applies the non-nil fields of params
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, email string, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		email,
		params.CampaignName,
		params.CampaignDescription,
		params.AgentPhoneNumber)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

const sqlDeleteCampaign = `
DELETE FROM campaigns WHERE campaign_id = $1 AND email = $2
`

// DeleteCampaign removes a campaign scoped to its owner
func (s *Store) DeleteCampaign(ctx context.Context, campaignID uuid.UUID, email string) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID, email)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlUpdateCampaignStatus = `
UPDATE campaigns SET status = $2, updated_at = now() WHERE campaign_id = $1
`

// UpdateCampaignStatus sets the campaign status and stamps updated_at
func (s *Store) UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status CampaignStatus) error {
	result, err := s.db.ExecContext(ctx, sqlUpdateCampaignStatus, campaignID, status)
	if err != nil {
		s.logger.Error(ctx, "failed to update campaign status", err)
		return fmt.Errorf("failed to update campaign status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update campaign status: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Set-union add: appending only numbers not already present keeps the
// whole operation a single atomic statement.
const sqlAddPhoneNumbers = `
UPDATE campaigns
SET phone_numbers = phone_numbers || (
        SELECT COALESCE(array_agg(n), '{}')
        FROM unnest($3::text[]) AS n
        WHERE NOT (n = ANY(phone_numbers))
    ),
    updated_at = now()
WHERE campaign_id = $1 AND email = $2
`

// AddPhoneNumbers unions the given numbers into phone_numbers.
// Numbers already present are skipped.
func (s *Store) AddPhoneNumbers(ctx context.Context, campaignID uuid.UUID, email string, numbers []string) error {
	result, err := s.db.ExecContext(ctx, sqlAddPhoneNumbers, campaignID, email, StringArray(numbers))
	if err != nil {
		s.logger.Error(ctx, "failed to add phone numbers", err)
		return fmt.Errorf("failed to add phone numbers: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to add phone numbers: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlRemovePhoneNumber = `
UPDATE campaigns
SET phone_numbers = array_remove(phone_numbers, $3),
    called_numbers = array_remove(called_numbers, $3),
    updated_at = now()
WHERE campaign_id = $1 AND email = $2 AND $3 = ANY(phone_numbers)
`

// RemovePhoneNumber pulls the number from both phone_numbers and
// called_numbers. Returns ErrNotFound when the number is not in the
// campaign.
func (s *Store) RemovePhoneNumber(ctx context.Context, campaignID uuid.UUID, email string, number string) error {
	result, err := s.db.ExecContext(ctx, sqlRemovePhoneNumber, campaignID, email, number)
	if err != nil {
		s.logger.Error(ctx, "failed to remove phone number", err)
		return fmt.Errorf("failed to remove phone number: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove phone number: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlReplacePhoneNumber = `
UPDATE campaigns
SET phone_numbers = array_replace(phone_numbers, $3, $4),
    called_numbers = array_replace(called_numbers, $3, $4),
    updated_at = now()
WHERE campaign_id = $1 AND email = $2 AND $3 = ANY(phone_numbers)
`

// ReplacePhoneNumber swaps old for new in both arrays, preserving the
// number's called/pending standing.
func (s *Store) ReplacePhoneNumber(ctx context.Context, campaignID uuid.UUID, email string, oldNumber, newNumber string) error {
	result, err := s.db.ExecContext(ctx, sqlReplacePhoneNumber, campaignID, email, oldNumber, newNumber)
	if err != nil {
		s.logger.Error(ctx, "failed to replace phone number", err)
		return fmt.Errorf("failed to replace phone number: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to replace phone number: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Guarded append: the WHERE clause makes the duplicate add a no-op, so
// concurrent attempt writers never need a read-modify-write cycle.
const sqlAddCalledNumber = `
UPDATE campaigns
SET called_numbers = array_append(called_numbers, $2),
    updated_at = now()
WHERE campaign_id = $1 AND NOT ($2 = ANY(called_numbers))
`

// AddCalledNumber atomically adds the number to called_numbers.
// Adding an already-present number is a no-op, not an error.
func (s *Store) AddCalledNumber(ctx context.Context, campaignID uuid.UUID, number string) error {
	_, err := s.db.ExecContext(ctx, sqlAddCalledNumber, campaignID, number)
	if err != nil {
		s.logger.Error(ctx, "failed to add called number", err)
		return fmt.Errorf("failed to add called number: %w", err)
	}
	return nil
}
