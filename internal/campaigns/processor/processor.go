// Package processor implements campaign lifecycle management and the
// outbound call dispatcher.
package processor

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"voice-server/internal/observability"
	"voice-server/internal/phone"
	"voice-server/internal/provisioning"
	"voice-server/internal/store"
)

var (
	// ErrCampaignNotFound indicates the campaign does not exist or
	// belongs to another user.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrPhoneNumberNotFound indicates the number is not in the campaign.
	ErrPhoneNumberNotFound = errors.New("phone number not found in campaign")
	// ErrNoPhoneNumberColumn indicates an imported CSV has no
	// phone_number column.
	ErrNoPhoneNumberColumn = errors.New("csv has no phone_number column")
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// CampaignStore is the persistence surface the processor needs.
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uuid.UUID, email string) (store.Campaign, error)
	ListCampaignsByEmail(ctx context.Context, email string) ([]store.Campaign, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, email string, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID uuid.UUID, email string) error
	UpdateCampaignStatus(ctx context.Context, campaignID uuid.UUID, status store.CampaignStatus) error
	AddPhoneNumbers(ctx context.Context, campaignID uuid.UUID, email string, numbers []string) error
	RemovePhoneNumber(ctx context.Context, campaignID uuid.UUID, email string, number string) error
	ReplacePhoneNumber(ctx context.Context, campaignID uuid.UUID, email string, oldNumber, newNumber string) error
	AddCalledNumber(ctx context.Context, campaignID uuid.UUID, number string) error
}

// SIPLineStore resolves the line mapped to an agent phone number.
type SIPLineStore interface {
	GetSIPLineByNumber(ctx context.Context, email, phoneNumber string) (store.SIPLine, error)
}

// Dialer places one outbound call via the telephony CLI.
type Dialer interface {
	DialParticipant(ctx context.Context, participant provisioning.SIPParticipant) error
}

// CampaignProcessor owns campaign CRUD and call dispatch.
type CampaignProcessor struct {
	store              CampaignStore
	lines              SIPLineStore
	dialer             Dialer
	maxConcurrentCalls int
	logger             *observability.Logger
}

// NewCampaignProcessor creates a CampaignProcessor.
func NewCampaignProcessor(campaignStore CampaignStore, lines SIPLineStore, dialer Dialer, maxConcurrentCalls int, logger *observability.Logger) CampaignProcessor {
	if maxConcurrentCalls <= 0 {
		maxConcurrentCalls = 3
	}
	return CampaignProcessor{
		store:              campaignStore,
		lines:              lines,
		dialer:             dialer,
		maxConcurrentCalls: maxConcurrentCalls,
		logger:             logger,
	}
}

// CreateCampaignParams carries the fields for a new campaign.
type CreateCampaignParams struct {
	Email               string
	CampaignName        string
	CampaignDescription *string
	AgentPhoneNumber    string
	PhoneNumbers        []string
}

// CallStatus summarizes a campaign's dial progress.
type CallStatus struct {
	CampaignID     uuid.UUID            `json:"campaign_id"`
	Status         store.CampaignStatus `json:"status"`
	TotalNumbers   int                  `json:"total_numbers"`
	CalledNumbers  []string             `json:"called_numbers"`
	PendingNumbers []string             `json:"pending_numbers"`
}

// CreateCampaign normalizes all numbers and creates the campaign.
func (p CampaignProcessor) CreateCampaign(ctx context.Context, params CreateCampaignParams) (store.Campaign, error) {
	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Email:               params.Email,
		CampaignName:        params.CampaignName,
		CampaignDescription: params.CampaignDescription,
		AgentPhoneNumber:    phone.Normalize(params.AgentPhoneNumber),
		PhoneNumbers:        store.StringArray(dedupe(phone.NormalizeAll(params.PhoneNumbers))),
	})
	if err != nil {
		return store.Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	p.logger.Info(ctx, fmt.Sprintf("created campaign %s with %d numbers", campaign.CampaignID, len(campaign.PhoneNumbers)))
	return campaign, nil
}

// GetCampaign fetches one campaign scoped to its owner.
func (p CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID, email string) (store.Campaign, error) {
	campaign, err := p.store.GetCampaign(ctx, campaignID, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaigns returns all campaigns owned by the email.
func (p CampaignProcessor) ListCampaigns(ctx context.Context, email string) ([]store.Campaign, error) {
	return p.store.ListCampaignsByEmail(ctx, email)
}

// UpdateCampaignParams carries optional campaign fields; nil keeps current.
type UpdateCampaignParams struct {
	CampaignName        *string
	CampaignDescription *string
	AgentPhoneNumber    *string
}

// UpdateCampaign applies the non-nil fields.
func (p CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, email string, params UpdateCampaignParams) (store.Campaign, error) {
	if params.AgentPhoneNumber != nil {
		normalized := phone.Normalize(*params.AgentPhoneNumber)
		params.AgentPhoneNumber = &normalized
	}
	campaign, err := p.store.UpdateCampaign(ctx, campaignID, email, store.UpdateCampaignParams{
		CampaignName:        params.CampaignName,
		CampaignDescription: params.CampaignDescription,
		AgentPhoneNumber:    params.AgentPhoneNumber,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		return store.Campaign{}, err
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign.
func (p CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID uuid.UUID, email string) error {
	err := p.store.DeleteCampaign(ctx, campaignID, email)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCampaignNotFound
	}
	return err
}

// AddPhoneNumbers normalizes and unions numbers into the campaign.
func (p CampaignProcessor) AddPhoneNumbers(ctx context.Context, campaignID uuid.UUID, email string, numbers []string) error {
	normalized := dedupe(phone.NormalizeAll(numbers))
	if len(normalized) == 0 {
		return nil
	}
	err := p.store.AddPhoneNumbers(ctx, campaignID, email, normalized)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCampaignNotFound
	}
	return err
}

// RemovePhoneNumber drops the number from the campaign along with its
// called record.
func (p CampaignProcessor) RemovePhoneNumber(ctx context.Context, campaignID uuid.UUID, email, number string) error {
	err := p.store.RemovePhoneNumber(ctx, campaignID, email, phone.Normalize(number))
	if errors.Is(err, store.ErrNotFound) {
		return ErrPhoneNumberNotFound
	}
	return err
}

// UpdatePhoneNumber replaces old with new, preserving called standing.
func (p CampaignProcessor) UpdatePhoneNumber(ctx context.Context, campaignID uuid.UUID, email, oldNumber, newNumber string) error {
	err := p.store.ReplacePhoneNumber(ctx, campaignID, email, phone.Normalize(oldNumber), phone.Normalize(newNumber))
	if errors.Is(err, store.ErrNotFound) {
		return ErrPhoneNumberNotFound
	}
	return err
}

// ImportNumbers reads a CSV with a phone_number column, normalizes the
// values and unions them into the campaign. Returns how many numbers
// the file contributed.
func (p CampaignProcessor) ImportNumbers(ctx context.Context, campaignID uuid.UUID, email string, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}
	column := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "phone_number") {
			column = i
			break
		}
	}
	if column < 0 {
		return 0, ErrNoPhoneNumberColumn
	}

	var numbers []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read csv record: %w", err)
		}
		if column >= len(record) {
			continue
		}
		if value := strings.TrimSpace(record[column]); value != "" {
			numbers = append(numbers, value)
		}
	}

	normalized := dedupe(phone.NormalizeAll(numbers))
	if len(normalized) == 0 {
		return 0, nil
	}
	if err := p.store.AddPhoneNumbers(ctx, campaignID, email, normalized); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrCampaignNotFound
		}
		return 0, err
	}
	return len(normalized), nil
}

// GetCallStatus reports called and pending numbers for a campaign.
func (p CampaignProcessor) GetCallStatus(ctx context.Context, campaignID uuid.UUID, email string) (CallStatus, error) {
	campaign, err := p.GetCampaign(ctx, campaignID, email)
	if err != nil {
		return CallStatus{}, err
	}
	return CallStatus{
		CampaignID:     campaign.CampaignID,
		Status:         campaign.Status,
		TotalNumbers:   len(campaign.PhoneNumbers),
		CalledNumbers:  campaign.CalledNumbers,
		PendingNumbers: pendingNumbers(campaign),
	}, nil
}

// pendingNumbers returns the campaign targets not yet called, in
// target-list order.
func pendingNumbers(campaign store.Campaign) []string {
	called := make(map[string]struct{}, len(campaign.CalledNumbers))
	for _, number := range campaign.CalledNumbers {
		called[phone.Normalize(number)] = struct{}{}
	}
	pending := []string{}
	for _, number := range campaign.PhoneNumbers {
		normalized := phone.Normalize(number)
		if _, ok := called[normalized]; !ok {
			pending = append(pending, normalized)
		}
	}
	return pending
}

func dedupe(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
