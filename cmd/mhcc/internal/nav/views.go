package nav

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"

	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

// Views are deliberately thin: read-only presentation over the SDK. Write
// flows (submitting records, raising disputes, consent changes) belong to
// the back office itself and render as placeholders here.

func renderDashboard(identity *sdk.Identity) {
	pterm.DefaultSection.Println("Dashboard")
	pterm.Info.Printf("Signed in as %s <%s>\n", identity.FullName, identity.Email)
	pterm.Info.Printf("Role: %s\n", strings.ReplaceAll(identity.Role.String(), "_", " "))
	if identity.BankID != nil {
		pterm.Info.Printf("Bank ID: %d\n", *identity.BankID)
	}
	if !identity.IsVerified {
		pterm.Warning.Println("Email not verified yet; some actions may be rejected.")
	}
}

func renderUsers(ctx context.Context, api *sdk.Client) error {
	users, err := api.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	pterm.DefaultSection.Println("Users")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tACTIVE\tVERIFIED")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%t\n", u.ID, u.Email, u.FullName, u.Role, u.IsActive, u.IsVerified)
	}
	return w.Flush()
}

func renderBanks(ctx context.Context, api *sdk.Client) error {
	banks, err := api.ListBanks(ctx)
	if err != nil {
		return fmt.Errorf("failed to list banks: %w", err)
	}

	pterm.DefaultSection.Println("Banks")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLICENSE\tCONTACT\tACTIVE\tAPPROVED")
	for _, b := range banks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\t%t\n", b.ID, b.Name, b.LicenseNumber, b.ContactEmail, b.IsActive, b.IsApproved)
	}
	return w.Flush()
}

func renderAuditLogs(ctx context.Context, api *sdk.Client) error {
	logs, err := api.ListAuditLogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list audit logs: %w", err)
	}

	pterm.DefaultSection.Println("Audit Logs")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tACTION\tRESOURCE\tAT")
	for _, entry := range logs {
		user := "-"
		if entry.UserID != nil {
			user = fmt.Sprintf("%d", *entry.UserID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", entry.ID, user, entry.Action, entry.Resource, entry.CreatedAt)
	}
	return w.Flush()
}

func renderInquiryHistory(ctx context.Context, api *sdk.Client) error {
	inquiries, err := api.ListInquiries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list inquiries: %w", err)
	}

	pterm.DefaultSection.Println("Inquiry History")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCONSUMER\tBANK\tPURPOSE\tAT")
	for _, q := range inquiries {
		fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", q.ID, q.ConsumerID, q.BankID, q.Purpose, q.CreatedAt)
	}
	return w.Flush()
}

func renderDisputes(ctx context.Context, api *sdk.Client) error {
	disputes, err := api.ListDisputes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list disputes: %w", err)
	}

	pterm.DefaultSection.Println("Disputes")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tDESCRIPTION\tAT")
	for _, d := range disputes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.ID, d.Status, d.Description, d.CreatedAt)
	}
	return w.Flush()
}

func renderCreditReport(ctx context.Context, api *sdk.Client, reportID int) error {
	if reportID == 0 {
		pterm.Info.Println("No report selected. Provide a report ID to view a generated report.")
		return nil
	}
	report, err := api.GetCreditReport(ctx, reportID)
	if err != nil {
		return fmt.Errorf("failed to fetch credit report: %w", err)
	}

	pterm.DefaultSection.Println("Credit Report")
	pterm.Info.Printf("Report #%d for consumer %d, generated %s\n", report.ID, report.ConsumerID, report.GeneratedAt)
	pterm.Info.Printf("Credit score: %d\n", report.CreditScore)
	if len(report.Factors) > 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FACTOR\tASSESSMENT")
		for factor, assessment := range report.Factors {
			fmt.Fprintf(w, "%s\t%s\n", factor, assessment)
		}
		return w.Flush()
	}
	return nil
}

func renderPlaceholder(label string) {
	pterm.DefaultSection.Println(label)
	pterm.Info.Printf("%s is managed in the bureau back office; this client does not drive that flow.\n", label)
}
