package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"voice-server/internal/observability"
	"voice-server/internal/phone"
	"voice-server/internal/provisioning"
	"voice-server/internal/store"
)

// ErrAgentLineNotFound indicates the campaign's agent phone number has
// no usable outbound trunk mapped.
var ErrAgentLineNotFound = errors.New("no outbound line mapped to agent phone number")

// Dispatch runs a campaign to completion: it resolves the outbound
// trunk for the campaign's agent number, dials every number not yet in
// called_numbers with bounded concurrency, and records each successful
// dial durably so an interrupted campaign resumes where it stopped.
//
// A failed attempt leaves its number pending and never aborts the
// campaign; the campaign still finishes in status completed. Only a
// missing line mapping fails the campaign outright, before any call is
// placed.
func (p CampaignProcessor) Dispatch(ctx context.Context, campaignID uuid.UUID, email string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.GetCampaign(ctx, campaignID, email)
	if err != nil {
		return err
	}

	// Stored values are normalized at the write boundary already;
	// normalizing again is idempotent and keeps the lookup exact even
	// for rows written before that invariant held.
	agentNumber := phone.Normalize(campaign.AgentPhoneNumber)
	line, err := p.lines.GetSIPLineByNumber(ctx, email, agentNumber)
	if err != nil || line.OutboundTrunkID == "" {
		p.logger.Error(ctx, fmt.Sprintf("no outbound trunk for agent number %s", agentNumber), err)
		if statusErr := p.store.UpdateCampaignStatus(ctx, campaignID, store.CampaignStatusFailed); statusErr != nil {
			p.logger.Error(ctx, "failed to mark campaign failed", statusErr)
		}
		return ErrAgentLineNotFound
	}

	pending := pendingNumbers(campaign)
	if len(pending) == 0 {
		p.logger.Info(ctx, "campaign has no numbers left to call")
		return p.store.UpdateCampaignStatus(ctx, campaignID, store.CampaignStatusNoNumbers)
	}

	if err := p.store.UpdateCampaignStatus(ctx, campaignID, store.CampaignStatusRunning); err != nil {
		return err
	}
	p.logger.Info(ctx, fmt.Sprintf("dispatching %d calls via trunk %s", len(pending), line.OutboundTrunkID))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrentCalls)
	for _, number := range pending {
		number := number
		g.Go(func() error {
			// Attempt failures are logged, never propagated: one bad
			// number must not cancel the batch.
			p.attempt(gctx, campaign.CampaignID, line.OutboundTrunkID, number)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := p.store.UpdateCampaignStatus(ctx, campaignID, store.CampaignStatusCompleted); err != nil {
		return err
	}
	p.logger.Info(ctx, "campaign dispatch finished")
	return nil
}

// attempt dials one number and, only on success, records it as called.
func (p CampaignProcessor) attempt(ctx context.Context, campaignID uuid.UUID, trunkID, number string) {
	digits := phone.Digits(number)
	participant := provisioning.SIPParticipant{
		SIPTrunkID:          trunkID,
		SIPCallTo:           number,
		RoomName:            fmt.Sprintf("call-%s", digits),
		ParticipantIdentity: fmt.Sprintf("sip_%s_%s_outbound", digits, campaignID),
		ParticipantName:     fmt.Sprintf("Campaign call to %s", number),
		WaitUntilAnswered:   true,
	}

	if err := p.dialer.DialParticipant(ctx, participant); err != nil {
		p.logger.Error(ctx, fmt.Sprintf("call to %s failed", number), err)
		return
	}
	if err := p.store.AddCalledNumber(ctx, campaignID, number); err != nil {
		// The call went out but the record did not stick; a re-run
		// will dial this number again.
		p.logger.Error(ctx, fmt.Sprintf("failed to record %s as called", number), err)
		return
	}
	p.logger.Info(ctx, fmt.Sprintf("call to %s dispatched", number))
}
