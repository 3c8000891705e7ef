// Package app provides the main TUI application that wires all views together.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vocdoni/votecaster-tui/internal/api"
	"github.com/vocdoni/votecaster-tui/internal/auth"
	"github.com/vocdoni/votecaster-tui/internal/config"
	"github.com/vocdoni/votecaster-tui/internal/log"
	"github.com/vocdoni/votecaster-tui/internal/tui"
	"github.com/vocdoni/votecaster-tui/internal/tui/commands"
	"github.com/vocdoni/votecaster-tui/internal/tui/views"
)

// App is the main TUI application that wires all views together.
type App struct {
	model *tui.Model

	// View models
	signInView          views.SignInModel
	menuView            views.MenuModel
	pollFormView        views.PollFormModel
	pollDoneView        views.PollDoneModel
	communityFormView   views.CommunityFormModel
	communityDoneView   views.CommunityDoneModel
	pollsView           views.PollsModel
	pollDetailView      views.PollDetailModel
	communitiesView     views.CommunitiesModel
	communityDetailView views.CommunityDetailModel
}

// New creates a new App with the given collaborators.
func New(cfg *config.Config, session *auth.Session, client *api.Client, logger *log.Logger) *App {
	model := tui.NewModel(cfg, session, client, logger)

	a := &App{model: model}
	switch model.State {
	case tui.StateMenu:
		a.menuView = views.NewMenuModel(session.Profile(), model.Width, model.Height)
	default:
		a.signInView = views.NewSignInModel(model.Width, model.Height)
	}
	return a
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	if a.model.State == tui.StateMenu {
		return a.menuView.Init()
	}
	return a.signInView.Init()
}

// authedClient returns the API client carrying the session's token.
func (a *App) authedClient() *api.Client {
	return a.model.Client.WithToken(a.model.Session.Token())
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		// Only propagate to the active view; the rest are rebuilt on entry.
		return a.routeToView(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}
		a.model.CtrlCPending = false

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.GoMenuMsg:
		a.model.State = tui.StateMenu
		a.menuView = views.NewMenuModel(a.model.Session.Profile(), a.model.Width, a.model.Height)
		return a, a.menuView.Init()
	}

	switch a.model.State {
	case tui.StateSignIn:
		return a.updateSignIn(msg)
	case tui.StateMenu:
		return a.updateMenu(msg)
	case tui.StatePollForm:
		return a.updatePollForm(msg)
	case tui.StateCommunityForm:
		return a.updateCommunityForm(msg)
	case tui.StatePolls:
		return a.updatePolls(msg)
	case tui.StatePollDetail:
		return a.updatePollDetail(msg)
	case tui.StateCommunities:
		return a.updateCommunities(msg)
	case tui.StateCommunityDetail:
		return a.updateCommunityDetail(msg)
	}
	return a.routeToView(msg)
}

// routeToView forwards a message to the view owning the current state.
func (a *App) routeToView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.model.State {
	case tui.StateSignIn:
		a.signInView, cmd = a.signInView.Update(msg)
	case tui.StateMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case tui.StatePollForm:
		a.pollFormView, cmd = a.pollFormView.Update(msg)
	case tui.StatePollDone:
		a.pollDoneView, cmd = a.pollDoneView.Update(msg)
	case tui.StateCommunityForm:
		a.communityFormView, cmd = a.communityFormView.Update(msg)
	case tui.StateCommunityDone:
		a.communityDoneView, cmd = a.communityDoneView.Update(msg)
	case tui.StatePolls:
		a.pollsView, cmd = a.pollsView.Update(msg)
	case tui.StatePollDetail:
		a.pollDetailView, cmd = a.pollDetailView.Update(msg)
	case tui.StateCommunities:
		a.communitiesView, cmd = a.communitiesView.Update(msg)
	case tui.StateCommunityDetail:
		a.communityDetailView, cmd = a.communityDetailView.Update(msg)
	}
	return a, cmd
}

// updateSignIn runs the sign-in gate. The session stays signed out until
// the backend verifies the token; a failed attempt leaves the gate in place
// with the error shown.
func (a *App) updateSignIn(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.SubmitTokenMsg:
		return a, commands.LoginCmd(a.model.Session, a.model.Client, a.model.Logger, msg.Token)

	case tui.LoginResultMsg:
		if msg.Err != nil {
			a.signInView.SetAuthenticating(false)
			a.signInView.Err = msg.Err
			return a, nil
		}
		a.model.State = tui.StateMenu
		a.menuView = views.NewMenuModel(msg.Profile, a.model.Width, a.model.Height)
		return a, a.menuView.Init()
	}
	return a.routeToView(msg)
}

func (a *App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.MenuSelectMsg:
		switch msg.Action {
		case views.ActionNewPoll:
			a.model.State = tui.StatePollForm
			a.pollFormView = views.NewPollFormModel(a.model.Width, a.model.Height)
			return a, a.pollFormView.Init()

		case views.ActionNewCommunity:
			a.model.State = tui.StateCommunityForm
			a.communityFormView = views.NewCommunityFormModel(a.model.Width, a.model.Height)
			return a, a.communityFormView.Init()

		case views.ActionBrowsePolls:
			a.model.State = tui.StatePolls
			a.pollsView = views.NewPollsModel(a.model.Width, a.model.Height)
			return a, tea.Batch(
				a.pollsView.Init(),
				commands.LoadPollsCmd(a.model.Client, a.model.Cfg.Browser.PageSize, 0),
			)

		case views.ActionBrowseCommunities:
			a.model.State = tui.StateCommunities
			a.communitiesView = views.NewCommunitiesModel(a.model.Width, a.model.Height)
			return a, tea.Batch(
				a.communitiesView.Init(),
				commands.LoadCommunitiesCmd(a.model.Client, a.model.Cfg.Browser.PageSize, 0),
			)

		case views.ActionLogout:
			a.menuView.SetSigningOut(true)
			return a, commands.LogoutCmd(a.model.Session, a.model.Logger)
		}
		return a, nil

	case tui.SessionClearedMsg:
		if msg.Err != nil {
			// Teardown failed, so the session is still authenticated.
			a.menuView.SetSigningOut(false)
			return a, nil
		}
		a.model.State = tui.StateSignIn
		a.signInView = views.NewSignInModel(a.model.Width, a.model.Height)
		return a, a.signInView.Init()
	}
	return a.routeToView(msg)
}

func (a *App) updatePollForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.SubmitPollMsg:
		req := msg.Draft.Request(a.model.Session.Profile())
		return a, commands.CreatePollCmd(a.authedClient(), a.model.Logger, req)

	case tui.PollCreatedMsg:
		a.pollFormView, _ = a.pollFormView.Update(msg)
		a.model.State = tui.StatePollDone
		a.pollDoneView = views.NewPollDoneModel(msg.PollID, a.model.Width, a.model.Height)
		return a, a.pollDoneView.Init()
	}
	return a.routeToView(msg)
}

func (a *App) updateCommunityForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case views.SearchRequestMsg:
		return a, commands.SearchChannelsCmd(a.model.Client, a.model.Logger, msg.Seq, msg.Query)

	case views.SubmitCommunityMsg:
		req := msg.Draft.Request(a.model.Session.Profile())
		return a, commands.CreateCommunityCmd(a.authedClient(), a.model.Logger, req)

	case tui.CommunityCreatedMsg:
		a.communityFormView, _ = a.communityFormView.Update(msg)
		a.model.State = tui.StateCommunityDone
		a.communityDoneView = views.NewCommunityDoneModel(msg.Community, a.model.Width, a.model.Height)
		return a, a.communityDoneView.Init()
	}
	return a.routeToView(msg)
}

func (a *App) updatePolls(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(views.OpenPollMsg); ok {
		a.model.State = tui.StatePollDetail
		a.pollDetailView = views.NewPollDetailModel(a.model.Width, a.model.Height)
		return a, tea.Batch(
			a.pollDetailView.Init(),
			commands.LoadPollCmd(a.model.Client, msg.PollID),
		)
	}
	return a.routeToView(msg)
}

func (a *App) updatePollDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(views.ClosePollMsg); ok {
		// The browser keeps its loaded page.
		a.model.State = tui.StatePolls
		return a, nil
	}
	return a.routeToView(msg)
}

func (a *App) updateCommunities(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(views.OpenCommunityMsg); ok {
		a.model.State = tui.StateCommunityDetail
		a.communityDetailView = views.NewCommunityDetailModel(a.model.Width, a.model.Height)
		return a, tea.Batch(
			a.communityDetailView.Init(),
			commands.LoadCommunityCmd(a.model.Client, msg.CommunityID),
		)
	}
	return a.routeToView(msg)
}

func (a *App) updateCommunityDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(views.CloseCommunityMsg); ok {
		a.model.State = tui.StateCommunities
		return a, nil
	}
	return a.routeToView(msg)
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch a.model.State {
	case tui.StateSignIn:
		content = a.signInView.View()
	case tui.StateMenu:
		content = a.menuView.View()
	case tui.StatePollForm:
		content = a.pollFormView.View()
	case tui.StatePollDone:
		content = a.pollDoneView.View()
	case tui.StateCommunityForm:
		content = a.communityFormView.View()
	case tui.StateCommunityDone:
		content = a.communityDoneView.View()
	case tui.StatePolls:
		content = a.pollsView.View()
	case tui.StatePollDetail:
		content = a.pollDetailView.View()
	case tui.StateCommunities:
		content = a.communitiesView.View()
	case tui.StateCommunityDetail:
		content = a.communityDetailView.View()
	default:
		content = "Unknown state"
	}

	if a.model.CtrlCPending {
		content += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to quit")
	}

	if a.model.Width > 0 && a.model.Height > 0 {
		return lipgloss.Place(a.model.Width, a.model.Height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
