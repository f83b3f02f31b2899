package payout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"launchpad/pkg/money"
)

// HTTPExecutor hands transfers to the treasury vault service, which owns the
// signing key and submits the transaction.
type HTTPExecutor struct {
	BaseURL string
	APIKey  string
	client  *http.Client
	limiter ratelimit.Limiter
	logger  *zap.Logger
}

func NewHTTPExecutor(baseURL, apiKey string, timeout time.Duration, perSecond int, logger *zap.Logger) *HTTPExecutor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	limiter := ratelimit.NewUnlimited()
	if perSecond > 0 {
		limiter = ratelimit.New(perSecond)
	}
	return &HTTPExecutor{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		logger:  logger,
	}
}

type transferRequest struct {
	Destination string `json:"destination"`
	Lamports    int64  `json:"lamports"`
	ClaimID     string `json:"claim_id"`
	Memo        string `json:"memo"`
}

type transferResponse struct {
	ClaimID   string `json:"claim_id"`
	Signature string `json:"signature"`
	Status    string `json:"status"`
	Error     string `json:"error"`
}

// Transfer posts the transfer to the vault. The claim ID is sent as the
// Idempotency-Key so the vault can deduplicate retries.
func (p *HTTPExecutor) Transfer(ctx context.Context, destination string, amount money.Lamports, claimID string) (string, error) {
	if err := ValidateAddress(destination); err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "bad destination", Err: err}
	}
	if amount <= 0 {
		return "", &TransferError{ClaimID: claimID, Reason: "amount must be positive"}
	}
	p.limiter.Take()

	bodyBytes, err := json.Marshal(transferRequest{
		Destination: destination,
		Lamports:    int64(amount),
		ClaimID:     claimID,
		Memo:        "referral claim " + claimID,
	})
	if err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "encode request", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/transfers", bytes.NewReader(bodyBytes))
	if err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	req.Header.Set("Idempotency-Key", claimID)

	p.logger.Info("payout transfer",
		zap.String("claim_id", claimID),
		zap.String("destination", destination),
		zap.String("amount", amount.String()))
	resp, err := p.client.Do(req)
	if err != nil {
		// The request may have reached the vault before the connection failed.
		return "", &TransferError{ClaimID: claimID, Reason: "vault unreachable", Err: fmt.Errorf("%w: %w", ErrOutcomeUnknown, err)}
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		p.logger.Warn("payout transfer rejected",
			zap.String("claim_id", claimID),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", respBody))
		te := &TransferError{ClaimID: claimID, Reason: fmt.Sprintf("vault returned %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))}
		if resp.StatusCode >= http.StatusInternalServerError {
			te.Err = ErrOutcomeUnknown
		}
		return "", te
	}
	var out transferResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", &TransferError{ClaimID: claimID, Reason: "decode response", Err: err}
	}
	if out.Status == "failed" {
		return "", &TransferError{ClaimID: claimID, Reason: out.Error}
	}
	if out.Signature == "" {
		return "", &TransferError{ClaimID: claimID, Reason: "vault returned no signature"}
	}
	return out.Signature, nil
}

// TransferStatus asks the vault what became of a claim. A 404 means the vault
// never accepted the transfer.
func (p *HTTPExecutor) TransferStatus(ctx context.Context, claimID string) (Status, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/v1/transfers/"+url.PathEscape(claimID), nil)
	if err != nil {
		return StatusUnknown, "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.APIKey)
	resp, err := p.client.Do(req)
	if err != nil {
		return StatusUnknown, "", fmt.Errorf("vault status: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return StatusFailed, "", nil
	}
	if resp.StatusCode != http.StatusOK {
		return StatusUnknown, "", fmt.Errorf("vault status: %d", resp.StatusCode)
	}
	var out transferResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return StatusUnknown, "", fmt.Errorf("decode vault status: %w", err)
	}
	return ParseStatus(out.Status), out.Signature, nil
}

// ParseStatus maps vault status strings onto Status.
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "confirmed", "finalized", "success", "completed":
		return StatusConfirmed
	case "failed", "rejected", "expired":
		return StatusFailed
	default:
		return StatusUnknown
	}
}

// IsTimeout reports whether err is a deadline or client timeout.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return true
	}
	return false
}

// Uncertain reports whether a failed Transfer may still have moved funds: it
// timed out, lost its connection, or the vault answered with a server error.
func Uncertain(err error) bool {
	return IsTimeout(err) || errors.Is(err, ErrOutcomeUnknown)
}
