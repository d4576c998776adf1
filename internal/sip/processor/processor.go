// Package processor provisions SIP lines: the inbound trunk, dispatch
// rule and outbound trunk backing each phone number, and the agent
// mapping that routes its calls.
package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voice-server/internal/observability"
	"voice-server/internal/phone"
	"voice-server/internal/provisioning"
	"voice-server/internal/store"
)

var (
	// ErrLineNotFound indicates no line exists for (email, number).
	ErrLineNotFound = errors.New("sip line not found")
	// ErrNoOutboundTrunk indicates the line has no outbound trunk to
	// dial through.
	ErrNoOutboundTrunk = errors.New("no outbound trunk configured")
)

//go:generate mockgen -source=processor.go -destination=mocks_test.go -package=processor

// LineStore persists SIP line mappings.
type LineStore interface {
	CreateSIPLine(ctx context.Context, params store.CreateSIPLineParams) (store.SIPLine, error)
	GetSIPLineByNumber(ctx context.Context, email, phoneNumber string) (store.SIPLine, error)
	ListSIPLinesByEmail(ctx context.Context, email string) ([]store.SIPLine, error)
	UpdateMappedAgent(ctx context.Context, email, phoneNumber, agentName string) error
	UpdateSIPLine(ctx context.Context, email, phoneNumber string, params store.UpdateSIPLineParams) (store.SIPLine, error)
	DeleteSIPLine(ctx context.Context, email, phoneNumber string) error
}

// Provisioner manages telephony resources through the external CLI.
type Provisioner interface {
	CreateInboundTrunk(ctx context.Context, trunk provisioning.InboundTrunk) (string, error)
	CreateOutboundTrunk(ctx context.Context, trunk provisioning.OutboundTrunk) (string, error)
	CreateDispatchRule(ctx context.Context, rule provisioning.DispatchRule) (string, error)
	DialParticipant(ctx context.Context, participant provisioning.SIPParticipant) error
	DeleteInboundTrunk(ctx context.Context, trunkID string) error
	DeleteOutboundTrunk(ctx context.Context, trunkID string) error
	DeleteDispatchRule(ctx context.Context, ruleID string) error
}

// SIPProcessor owns line provisioning and agent mapping.
type SIPProcessor struct {
	store       LineStore
	provisioner Provisioner
	logger      *observability.Logger
}

// NewSIPProcessor creates a SIPProcessor.
func NewSIPProcessor(lineStore LineStore, provisioner Provisioner, logger *observability.Logger) SIPProcessor {
	return SIPProcessor{
		store:       lineStore,
		provisioner: provisioner,
		logger:      logger,
	}
}

// ConfigureParams carries the connection settings for a new line.
type ConfigureParams struct {
	Email        string
	PhoneNumber  string
	Provider     string
	Label        string
	SIPAddress   string
	AuthUsername string
	AuthPassword string
}

// outboundNumber formats the number the way the provider's SIP gateway
// expects it. Telnyx rejects the leading '+'.
func outboundNumber(provider, number string) string {
	if strings.EqualFold(provider, "telnyx") {
		return strings.TrimPrefix(number, "+")
	}
	return number
}

// Configure provisions the full resource chain for one phone number:
// an inbound trunk, a dispatch rule routing its callers into call-
// prefixed rooms, and an outbound trunk for dialing out. Resources
// created before a failure are torn down again.
func (p SIPProcessor) Configure(ctx context.Context, params ConfigureParams) (store.SIPLine, error) {
	number := phone.Normalize(params.PhoneNumber)
	digits := phone.Digits(number)
	ctx = observability.WithFields(ctx, observability.Field{Key: "phone_number", Value: number})

	inboundID, err := p.provisioner.CreateInboundTrunk(ctx, provisioning.InboundTrunk{
		Name:         fmt.Sprintf("inbound-%s", digits),
		Numbers:      []string{number},
		AuthUsername: params.AuthUsername,
		AuthPassword: params.AuthPassword,
		KrispEnabled: true,
	})
	if err != nil {
		return store.SIPLine{}, err
	}

	rule := provisioning.DispatchRule{
		Name:     fmt.Sprintf("dispatch-%s", digits),
		TrunkIDs: []string{inboundID},
	}
	rule.Rule.DispatchRuleIndividual.RoomPrefix = "call-"
	ruleID, err := p.provisioner.CreateDispatchRule(ctx, rule)
	if err != nil {
		p.teardown(ctx, inboundID, "", "")
		return store.SIPLine{}, err
	}

	outboundID, err := p.provisioner.CreateOutboundTrunk(ctx, provisioning.OutboundTrunk{
		Name:         fmt.Sprintf("outbound-%s", digits),
		Address:      params.SIPAddress,
		Numbers:      []string{outboundNumber(params.Provider, number)},
		AuthUsername: params.AuthUsername,
		AuthPassword: params.AuthPassword,
	})
	if err != nil {
		p.teardown(ctx, inboundID, "", ruleID)
		return store.SIPLine{}, err
	}

	line, err := p.store.CreateSIPLine(ctx, store.CreateSIPLineParams{
		Email:           params.Email,
		PhoneNumber:     number,
		Provider:        params.Provider,
		Label:           params.Label,
		InboundTrunkID:  inboundID,
		OutboundTrunkID: outboundID,
		DispatchRuleID:  ruleID,
		AuthUsername:    params.AuthUsername,
		AuthPassword:    params.AuthPassword,
		SIPAddress:      params.SIPAddress,
	})
	if err != nil {
		p.teardown(ctx, inboundID, outboundID, ruleID)
		return store.SIPLine{}, err
	}

	p.logger.Info(ctx, fmt.Sprintf("provisioned line %s: inbound %s, outbound %s, rule %s", number, inboundID, outboundID, ruleID))
	return line, nil
}

// teardown best-effort deletes provisioned resources after a partial
// failure. Leftovers are logged, not returned.
func (p SIPProcessor) teardown(ctx context.Context, inboundID, outboundID, ruleID string) {
	if ruleID != "" {
		if err := p.provisioner.DeleteDispatchRule(ctx, ruleID); err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to clean up dispatch rule %s", ruleID), err)
		}
	}
	if inboundID != "" {
		if err := p.provisioner.DeleteInboundTrunk(ctx, inboundID); err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to clean up inbound trunk %s", inboundID), err)
		}
	}
	if outboundID != "" {
		if err := p.provisioner.DeleteOutboundTrunk(ctx, outboundID); err != nil {
			p.logger.Error(ctx, fmt.Sprintf("failed to clean up outbound trunk %s", outboundID), err)
		}
	}
}

// ListLines returns all of the user's provisioned lines.
func (p SIPProcessor) ListLines(ctx context.Context, email string) ([]store.SIPLine, error) {
	return p.store.ListSIPLinesByEmail(ctx, email)
}

// GetLine fetches one line by owner and number.
func (p SIPProcessor) GetLine(ctx context.Context, email, phoneNumber string) (store.SIPLine, error) {
	line, err := p.store.GetSIPLineByNumber(ctx, email, phone.Normalize(phoneNumber))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.SIPLine{}, ErrLineNotFound
		}
		return store.SIPLine{}, err
	}
	return line, nil
}

// MapAgent routes the line's calls to the named agent.
func (p SIPProcessor) MapAgent(ctx context.Context, email, phoneNumber, agentName string) error {
	err := p.store.UpdateMappedAgent(ctx, email, phone.Normalize(phoneNumber), agentName)
	if errors.Is(err, store.ErrNotFound) {
		return ErrLineNotFound
	}
	return err
}

// UpdateLine re-provisions a line with new connection settings. The
// old resources are deleted and replaced; the agent mapping survives.
func (p SIPProcessor) UpdateLine(ctx context.Context, email, phoneNumber string, params ConfigureParams) (store.SIPLine, error) {
	number := phone.Normalize(phoneNumber)
	existing, err := p.GetLine(ctx, email, number)
	if err != nil {
		return store.SIPLine{}, err
	}

	p.teardown(ctx, existing.InboundTrunkID, existing.OutboundTrunkID, existing.DispatchRuleID)

	digits := phone.Digits(number)
	inboundID, err := p.provisioner.CreateInboundTrunk(ctx, provisioning.InboundTrunk{
		Name:         fmt.Sprintf("inbound-%s", digits),
		Numbers:      []string{number},
		AuthUsername: params.AuthUsername,
		AuthPassword: params.AuthPassword,
		KrispEnabled: true,
	})
	if err != nil {
		return store.SIPLine{}, err
	}

	rule := provisioning.DispatchRule{
		Name:     fmt.Sprintf("dispatch-%s", digits),
		TrunkIDs: []string{inboundID},
	}
	rule.Rule.DispatchRuleIndividual.RoomPrefix = "call-"
	ruleID, err := p.provisioner.CreateDispatchRule(ctx, rule)
	if err != nil {
		p.teardown(ctx, inboundID, "", "")
		return store.SIPLine{}, err
	}

	outboundID, err := p.provisioner.CreateOutboundTrunk(ctx, provisioning.OutboundTrunk{
		Name:         fmt.Sprintf("outbound-%s", digits),
		Address:      params.SIPAddress,
		Numbers:      []string{outboundNumber(params.Provider, number)},
		AuthUsername: params.AuthUsername,
		AuthPassword: params.AuthPassword,
	})
	if err != nil {
		p.teardown(ctx, inboundID, "", ruleID)
		return store.SIPLine{}, err
	}

	line, err := p.store.UpdateSIPLine(ctx, email, number, store.UpdateSIPLineParams{
		Provider:        params.Provider,
		Label:           params.Label,
		MappedAgentName: existing.MappedAgentName,
		InboundTrunkID:  inboundID,
		OutboundTrunkID: outboundID,
		DispatchRuleID:  ruleID,
		AuthUsername:    params.AuthUsername,
		AuthPassword:    params.AuthPassword,
		SIPAddress:      params.SIPAddress,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.SIPLine{}, ErrLineNotFound
		}
		return store.SIPLine{}, err
	}
	return line, nil
}

// DeleteLine removes the line's provider resources and its stored
// mapping. Resource deletion is best-effort; the mapping is removed
// regardless so the number can be re-provisioned.
func (p SIPProcessor) DeleteLine(ctx context.Context, email, phoneNumber string) error {
	number := phone.Normalize(phoneNumber)
	line, err := p.GetLine(ctx, email, number)
	if err != nil {
		return err
	}

	p.teardown(ctx, line.InboundTrunkID, line.OutboundTrunkID, line.DispatchRuleID)

	if err := p.store.DeleteSIPLine(ctx, email, number); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrLineNotFound
		}
		return err
	}
	return nil
}

// TestCall dials one target through the line's outbound trunk to
// verify the provider credentials end to end.
func (p SIPProcessor) TestCall(ctx context.Context, email, phoneNumber, targetNumber string) error {
	line, err := p.GetLine(ctx, email, phoneNumber)
	if err != nil {
		return err
	}
	if line.OutboundTrunkID == "" {
		return ErrNoOutboundTrunk
	}

	target := phone.Normalize(targetNumber)
	digits := phone.Digits(target)
	return p.provisioner.DialParticipant(ctx, provisioning.SIPParticipant{
		SIPTrunkID:          line.OutboundTrunkID,
		SIPCallTo:           target,
		RoomName:            fmt.Sprintf("call-%s", digits),
		ParticipantIdentity: fmt.Sprintf("sip_%s_test_outbound", digits),
		ParticipantName:     fmt.Sprintf("Test call to %s", target),
		WaitUntilAnswered:   true,
	})
}
