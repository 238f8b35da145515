package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/arunvs830/lls-app-sub000/internal/api"
	"github.com/arunvs830/lls-app-sub000/internal/config"
	"github.com/arunvs830/lls-app-sub000/internal/session"
)

// App is the root model: it owns the active route, the mounted page, the
// role shell around it and the toast overlay. All cross-page state lives
// here or in the session store; pages keep only their own view state.
type App struct {
	client  *api.Client
	session *session.Store
	cfg     config.Config
	log     *zap.Logger
	styles  Styles

	route  Route
	page   Page
	layout LayoutConfig
	badges BadgeMsg
	toasts ToastModel
}

// NewApp wires the root model.
func NewApp(client *api.Client, store *session.Store, cfg config.Config, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	styles := NewStyles(ThemeByName(cfg.Theme))
	return &App{
		client:  client,
		session: store,
		cfg:     cfg,
		log:     log,
		styles:  styles,
		layout:  NewLayoutConfig(MinimumTerminalWidth, MinimumTerminalHeight),
		toasts:  NewToastModel(styles),
	}
}

// Styles exposes the active style set to pages.
func (a *App) Styles() Styles { return a.styles }

// Client exposes the API client to page builders.
func (a *App) Client() *api.Client { return a.client }

// Session exposes the session store.
func (a *App) Session() *session.Store { return a.session }

// Route returns the active route.
func (a *App) Route() Route { return a.route }

// ActivePage returns the mounted page, exposed for tests.
func (a *App) ActivePage() Page { return a.page }

// requestContext derives the per-request context every page command uses.
// No global cancellation: navigating away simply drops the reply.
func (a *App) requestContext() (context.Context, context.CancelFunc) {
	timeout := a.cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// principal returns the authenticated identity or nil.
func (a *App) principal() *api.Principal {
	if p, ok := a.session.Principal(); ok {
		return &p
	}
	return nil
}

func (a *App) Init() tea.Cmd {
	start := RouteLogin
	if p := a.principal(); p != nil {
		start = DashboardRoute(p.Role)
	}
	return a.mount(start, 0)
}

// mount builds and initializes the page for a route, applying the guard.
func (a *App) mount(route Route, arg int) tea.Cmd {
	resolved, allowed := Resolve(route, a.principal())
	var denied tea.Cmd
	if !allowed && route != resolved {
		a.log.Warn("navigation denied", zap.String("requested", RoutePath(route, arg)), zap.String("redirected", string(resolved)))
		denied = ShowToast(ToastWarning, "You don't have access to that page")
		arg = 0
	}

	def := routeDefs[resolved]
	a.route = resolved
	a.page = def.build(a, arg)
	a.page.SetSize(a.layout.ContentWidth(), a.layout.ContentHeight())
	return tea.Batch(a.page.Init(), denied)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.layout = NewLayoutConfig(msg.Width, msg.Height)
		if a.page != nil {
			a.page.SetSize(a.layout.ContentWidth(), a.layout.ContentHeight())
		}
		return a, nil

	case NavigateMsg:
		return a, a.mount(msg.Route, msg.Arg)

	case LogoutMsg:
		if err := a.session.Logout(); err != nil {
			a.log.Error("logout", zap.Error(err))
		}
		a.badges = BadgeMsg{}
		return a, tea.Batch(ShowToast(ToastInfo, "Signed out"), a.mount(RouteLogin, 0))

	case BadgeMsg:
		a.badges = msg
		return a, nil

	case ToastMsg, toastExpireMsg:
		var cmd tea.Cmd
		a.toasts, cmd = a.toasts.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+l":
			if a.session.IsAuthenticated() {
				return a, func() tea.Msg { return LogoutMsg{} }
			}
		case "esc":
			if a.toasts.Active() {
				a.toasts.DismissNewest()
				return a, nil
			}
			// esc walks back to the role dashboard from any inner page.
			if p := a.principal(); p != nil && a.route != DashboardRoute(p.Role) {
				if _, isForm := a.page.(*FormPage); !isForm || !a.formDirty() {
					return a, a.mount(DashboardRoute(p.Role), 0)
				}
			}
		}
	}

	if a.page == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.page, cmd = a.page.Update(msg)
	return a, cmd
}

// formDirty reports whether the mounted form holds unsubmitted input, in
// which case esc is left to the form itself.
func (a *App) formDirty() bool {
	form, ok := a.page.(*FormPage)
	if !ok {
		return false
	}
	for _, v := range form.Values() {
		if v != "" {
			return true
		}
	}
	return false
}

func (a *App) View() string {
	if a.page == nil {
		return ""
	}

	var screen string
	p := a.principal()
	if p == nil || a.route == RouteLogin || a.route == RouteRegister {
		// Public screens render centered without a shell.
		screen = lipgloss.Place(
			a.layout.TerminalWidth, a.layout.TerminalHeight,
			lipgloss.Center, lipgloss.Center,
			a.styles.Card.Render(a.page.View()),
		)
	} else {
		sidebar := RenderSidebar(a.styles, p.Role, a.route, a.badges, a.layout.TerminalHeight-1)
		header := RenderHeader(a.styles, a.page.Title(), *p, a.badges, a.layout.ContentWidth())
		content := a.styles.Content.Render(a.page.View())
		right := lipgloss.JoinVertical(lipgloss.Left, header, content)
		screen = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, right)
	}

	if a.toasts.Active() {
		screen += "\n" + a.toasts.View()
	}
	return screen
}
