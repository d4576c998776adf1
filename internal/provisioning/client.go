// Package provisioning shells out to the LiveKit CLI to manage SIP
// trunks, dispatch rules and outbound call participants.
package provisioning

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"voice-server/internal/observability"
)

var (
	// ErrCommandFailed indicates the CLI exited non-zero or could not run.
	ErrCommandFailed = errors.New("provisioning command failed")
	// ErrParseOutput indicates the CLI succeeded but its output did not
	// contain the expected resource identifier.
	ErrParseOutput = errors.New("unable to parse provisioning output")
)

// Runner executes an external command and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}

// InboundTrunk is the payload for creating an inbound SIP trunk.
type InboundTrunk struct {
	Name         string   `json:"name"`
	Numbers      []string `json:"numbers"`
	AuthUsername string   `json:"auth_username,omitempty"`
	AuthPassword string   `json:"auth_password,omitempty"`
	KrispEnabled bool     `json:"krisp_enabled,omitempty"`
}

// OutboundTrunk is the payload for creating an outbound SIP trunk.
type OutboundTrunk struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Numbers      []string `json:"numbers"`
	AuthUsername string   `json:"auth_username,omitempty"`
	AuthPassword string   `json:"auth_password,omitempty"`
}

// DispatchRuleIndividual routes each caller into its own room with the
// given prefix.
type DispatchRuleIndividual struct {
	RoomPrefix string `json:"roomPrefix"`
}

// DispatchRuleSpec wraps the rule variant accepted by the CLI.
type DispatchRuleSpec struct {
	DispatchRuleIndividual DispatchRuleIndividual `json:"dispatchRuleIndividual"`
}

// DispatchRule is the payload for creating a SIP dispatch rule.
type DispatchRule struct {
	Name     string           `json:"name"`
	TrunkIDs []string         `json:"trunk_ids"`
	Rule     DispatchRuleSpec `json:"rule"`
}

// SIPParticipant is the payload for dialing one outbound call.
type SIPParticipant struct {
	SIPTrunkID          string `json:"sip_trunk_id"`
	SIPCallTo           string `json:"sip_call_to"`
	RoomName            string `json:"room_name"`
	ParticipantIdentity string `json:"participant_identity"`
	ParticipantName     string `json:"participant_name,omitempty"`
	WaitUntilAnswered   bool   `json:"wait_until_answered,omitempty"`
}

// Client wraps the lk binary. Every operation writes its payload to a
// scratch file, invokes the CLI under a deadline and removes the
// scratch directory before returning.
type Client struct {
	binary  string
	timeout time.Duration
	runner  Runner
	logger  *observability.Logger
}

// New builds a Client that runs the given binary with a per-command timeout.
func New(binary string, timeout time.Duration, logger *observability.Logger) *Client {
	return &Client{binary: binary, timeout: timeout, runner: execRunner{}, logger: logger}
}

// NewWithRunner substitutes the command runner, used by tests.
func NewWithRunner(binary string, timeout time.Duration, runner Runner, logger *observability.Logger) *Client {
	return &Client{binary: binary, timeout: timeout, runner: runner, logger: logger}
}

// CreateInboundTrunk provisions an inbound trunk and returns its ID.
func (c *Client) CreateInboundTrunk(ctx context.Context, trunk InboundTrunk) (string, error) {
	output, err := c.runWithPayload(ctx, trunk, "sip", "inbound", "create")
	if err != nil {
		return "", err
	}
	return parseID(output, "SIPTrunkID")
}

// CreateOutboundTrunk provisions an outbound trunk and returns its ID.
func (c *Client) CreateOutboundTrunk(ctx context.Context, trunk OutboundTrunk) (string, error) {
	output, err := c.runWithPayload(ctx, trunk, "sip", "outbound", "create")
	if err != nil {
		return "", err
	}
	return parseID(output, "SIPTrunkID")
}

// CreateDispatchRule provisions a dispatch rule and returns its ID.
func (c *Client) CreateDispatchRule(ctx context.Context, rule DispatchRule) (string, error) {
	output, err := c.runWithPayload(ctx, rule, "sip", "dispatch", "create")
	if err != nil {
		return "", err
	}
	return parseID(output, "SIPDispatchRuleID")
}

// DialParticipant places one outbound call. The CLI blocks until the
// participant is created, so the configured timeout bounds the dial.
func (c *Client) DialParticipant(ctx context.Context, participant SIPParticipant) error {
	_, err := c.runWithPayload(ctx, participant, "sip", "participant", "create")
	return err
}

// DeleteInboundTrunk removes an inbound trunk by ID.
func (c *Client) DeleteInboundTrunk(ctx context.Context, trunkID string) error {
	return c.run(ctx, "sip", "inbound", "delete", trunkID)
}

// DeleteOutboundTrunk removes an outbound trunk by ID.
func (c *Client) DeleteOutboundTrunk(ctx context.Context, trunkID string) error {
	return c.run(ctx, "sip", "outbound", "delete", trunkID)
}

// DeleteDispatchRule removes a dispatch rule by ID.
func (c *Client) DeleteDispatchRule(ctx context.Context, ruleID string) error {
	return c.run(ctx, "sip", "dispatch", "delete", ruleID)
}

func (c *Client) runWithPayload(ctx context.Context, payload interface{}, args ...string) (string, error) {
	dir, err := os.MkdirTemp("", "provision-")
	if err != nil {
		return "", fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}
	file := filepath.Join(dir, "payload.json")
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write payload: %w", err)
	}

	return c.runRaw(ctx, append(args, file)...)
}

func (c *Client) run(ctx context.Context, args ...string) error {
	_, err := c.runRaw(ctx, args...)
	return err
}

func (c *Client) runRaw(ctx context.Context, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	output, err := c.runner.Run(ctx, c.binary, args...)
	if err != nil {
		c.logger.Error(ctx, fmt.Sprintf("command %s %s failed: %s", c.binary, strings.Join(args, " "), strings.TrimSpace(string(output))), err)
		return "", fmt.Errorf("%w: %s: %v", ErrCommandFailed, strings.TrimSpace(string(output)), err)
	}
	return string(output), nil
}

// parseID scans CLI output for a "<key>: <value>" line.
func parseID(output, key string) (string, error) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		idx := strings.Index(line, key+":")
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(line[idx+len(key)+1:])
		if fields := strings.Fields(value); len(fields) > 0 {
			return fields[0], nil
		}
	}
	return "", fmt.Errorf("%w: no %s in output", ErrParseOutput, key)
}
