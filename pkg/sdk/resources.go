package sdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// User is a bureau account as listed by the back office.
type User struct {
	ID         int    `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Role       string `json:"role"`
	BankID     *int   `json:"bank_id"`
	IsActive   bool   `json:"is_active"`
	IsVerified bool   `json:"is_verified"`
}

// Bank is a registered financial institution.
type Bank struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	ContactEmail  string `json:"contact_email"`
	IsActive      bool   `json:"is_active"`
	IsApproved    bool   `json:"is_approved"`
}

// AuditLog is one entry from the bureau's audit trail.
type AuditLog struct {
	ID        int    `json:"id"`
	UserID    *int   `json:"user_id"`
	Action    string `json:"action"`
	Resource  string `json:"resource"`
	CreatedAt string `json:"created_at"`
}

// Inquiry is a recorded credit inquiry.
type Inquiry struct {
	ID         int    `json:"id"`
	ConsumerID int    `json:"consumer_id"`
	BankID     int    `json:"bank_id"`
	Purpose    string `json:"inquiry_purpose"`
	CreatedAt  string `json:"created_at"`
}

// Dispute is a consumer-raised dispute over a report entry.
type Dispute struct {
	ID          int    `json:"id"`
	ConsumerID  int    `json:"consumer_id"`
	Status      string `json:"status"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// CreditReport is a generated report summary.
type CreditReport struct {
	ID          int               `json:"id"`
	ConsumerID  int               `json:"consumer_id"`
	CreditScore int               `json:"credit_score"`
	Factors     map[string]string `json:"score_factors"`
	GeneratedAt string            `json:"generated_at"`
}

// The operations below exist to put real data behind each role's screens.
// They are read-only and expect a Client whose HTTP client injects the
// bearer token (see WithHTTPClient); the bureau enforces role permissions
// server-side and a denial surfaces as an AUTHORIZATION error.

// ListUsers returns bureau accounts (admin only server-side).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/users/", "", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListBanks returns registered banks.
func (c *Client) ListBanks(ctx context.Context) ([]Bank, error) {
	var banks []Bank
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/banks/", "", nil, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// ListAuditLogs returns the audit trail (admin only server-side).
func (c *Client) ListAuditLogs(ctx context.Context) ([]AuditLog, error) {
	var logs []AuditLog
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/audit/", "", nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// ListInquiries returns the caller's visible inquiry history.
func (c *Client) ListInquiries(ctx context.Context) ([]Inquiry, error) {
	var inquiries []Inquiry
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/inquiries/", "", nil, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// ListDisputes returns the caller's visible disputes.
func (c *Client) ListDisputes(ctx context.Context) ([]Dispute, error) {
	var disputes []Dispute
	if err := c.doJSON(ctx, http.MethodGet, apiPrefix+"/disputes/", "", nil, &disputes); err != nil {
		return nil, err
	}
	return disputes, nil
}

// GetCreditReport fetches a single generated report by id.
func (c *Client) GetCreditReport(ctx context.Context, reportID int) (*CreditReport, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("%s/credit-reports/%d", apiPrefix, reportID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &raw); err != nil {
		return nil, err
	}
	var report CreditReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, newAuthError(ErrMalformedResponse, "cannot decode credit report", err)
	}
	return &report, nil
}
