package nav

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/Daddy-Tine/MHCreditCheck/pkg/rbac"
	"github.com/Daddy-Tine/MHCreditCheck/pkg/sdk"
)

const logoutLabel = "Logout"

// APIClientFunc lazily yields an authenticated SDK client. The shell asks
// for it only when a view actually needs the bureau, so a menu visit costs
// no network traffic.
type APIClientFunc func() (*sdk.Client, error)

// Shell renders the role's capability list as an interactive menu and
// dispatches navigation through the route guard. It never derives menu
// content anywhere but the capability table.
type Shell struct {
	session   *sdk.Session
	apiClient APIClientFunc
	// ReportID preselects the consumer report to open; zero prompts.
	ReportID int
	// NonInteractive suppresses in-view prompts.
	NonInteractive bool
}

// NewShell creates a navigation shell over the resolved session.
func NewShell(session *sdk.Session, apiClient APIClientFunc) *Shell {
	return &Shell{session: session, apiClient: apiClient}
}

// Run loops the menu until the user logs out or quits. It assumes the
// session has been resolved and guarded before entry.
func (s *Shell) Run(ctx context.Context) error {
	for {
		identity := s.session.CurrentIdentity()
		if identity == nil {
			pterm.Info.Println("Session ended. Run `mhcc auth login` to sign in again.")
			return nil
		}

		entries := rbac.CapabilitiesFor(identity.Role)
		if len(entries) == 0 {
			pterm.Warning.Printf("Role %s has no navigable screens in this client.\n", identity.Role)
			return nil
		}

		options := make([]string, 0, len(entries)+1)
		byLabel := make(map[string]rbac.NavEntry, len(entries))
		for _, entry := range entries {
			options = append(options, entry.Label)
			byLabel[entry.Label] = entry
		}
		options = append(options, logoutLabel)

		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText(fmt.Sprintf("%s (%s)", identity.FullName, identity.Role)).
			Show()
		if err != nil {
			return err
		}

		if choice == logoutLabel {
			s.session.Logout()
			pterm.Success.Println("Logged out successfully")
			return nil
		}

		if err := s.Open(ctx, byLabel[choice].Path); err != nil {
			pterm.Error.Println(err)
		}
	}
}

// Open runs one guarded navigation to path and renders the outcome. When the
// bureau rejects the access token mid-session the stored credential pair is
// discarded and the session drops back to unauthenticated; a permission
// denial (403) only fails the one view.
func (s *Shell) Open(ctx context.Context, path string) error {
	switch Evaluate(s.session, path) {
	case DecisionPending:
		pterm.Info.Println("Loading...")
		return nil
	case DecisionRedirectLogin:
		pterm.Warning.Println("Not signed in. Run `mhcc auth login` first.")
		return nil
	case DecisionRedirectHome:
		return s.checkRendered(s.render(ctx, rbac.DefaultLandingPath))
	default:
		if !KnownPath(path) {
			path = rbac.DefaultLandingPath
		}
		if identity := s.session.CurrentIdentity(); identity != nil &&
			path != rbac.DefaultLandingPath && !rbac.Allows(identity.Role, path) {
			pterm.Warning.Printf("%s is not on the %s menu; the bureau may refuse it.\n", path, identity.Role)
		}
		return s.checkRendered(s.render(ctx, path))
	}
}

// checkRendered signs the session out when a view failed because the bureau
// no longer accepts the access token.
func (s *Shell) checkRendered(err error) error {
	if sdk.IsTokenRejected(err) {
		s.session.Logout()
		pterm.Warning.Println("Session expired. Run `mhcc auth login` to sign in again.")
		return nil
	}
	return err
}

func (s *Shell) render(ctx context.Context, path string) error {
	identity := s.session.CurrentIdentity()

	switch path {
	case rbac.DefaultLandingPath:
		renderDashboard(identity)
		return nil
	case "/admin/users":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		return renderUsers(ctx, api)
	case "/admin/banks":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		return renderBanks(ctx, api)
	case "/admin/audit":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		return renderAuditLogs(ctx, api)
	case "/bank/history":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		return renderInquiryHistory(ctx, api)
	case "/consumer/disputes":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		return renderDisputes(ctx, api)
	case "/consumer/report":
		api, err := s.apiClient()
		if err != nil {
			return err
		}
		reportID := s.ReportID
		if reportID == 0 && !s.NonInteractive {
			entered, err := pterm.DefaultInteractiveTextInput.
				WithDefaultText("Report ID (blank to skip)").
				Show()
			if err == nil && entered != "" {
				if parsed, perr := strconv.Atoi(entered); perr == nil {
					reportID = parsed
				}
			}
		}
		return renderCreditReport(ctx, api, reportID)
	case "/bank/submit-data":
		renderPlaceholder("Submit Data")
		return nil
	case "/bank/inquiry":
		renderPlaceholder("Credit Inquiry")
		return nil
	case "/consumer/consent":
		renderPlaceholder("Consent")
		return nil
	default:
		renderDashboard(identity)
		return nil
	}
}
