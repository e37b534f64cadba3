package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	cartdto "ancare/internal/modules/cart/dto"
	checkoutdto "ancare/internal/modules/checkout/dto"
	interestdto "ancare/internal/modules/interest/dto"
	podcastdto "ancare/internal/modules/podcast/dto"
	"ancare/internal/ui/components"
	"ancare/internal/ui/theme"
	cartview "ancare/internal/ui/views/cart"
	interestview "ancare/internal/ui/views/interest"
	podcastview "ancare/internal/ui/views/podcast"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type cartPort interface {
	Show(ctx context.Context) (cartdto.CartOutput, error)
	AddByName(ctx context.Context, name string) (cartdto.LineItemOutput, error)
	RemoveAt(ctx context.Context, index int) (cartdto.CartOutput, error)
	Clear(ctx context.Context) error
}

type interestPort interface {
	Show(ctx context.Context) (interestdto.LogOutput, error)
	Ranking(ctx context.Context) ([]interestdto.RankingEntry, error)
	Record(ctx context.Context, variant, name, source, note string) (interestdto.LogOutput, error)
	Reset(ctx context.Context) error
}

type checkoutPort interface {
	Show(ctx context.Context) (checkoutdto.SummaryOutput, error)
	SetShipping(ctx context.Context, code string) (checkoutdto.PreferencesOutput, error)
}

type podcastPort interface {
	List(ctx context.Context) ([]podcastdto.EpisodeOutput, error)
}

// ─── tabs ────────────────────────────────────────────────────────────────────

type tabID int

const (
	tabCart tabID = iota
	tabInterest
	tabPodcast
	tabCount
)

var tabLabels = [tabCount]string{"Warenkorb", "Nachfrage", "Podcast"}

const (
	promptAddItem        = "cart:add"
	promptRecordInterest = "interest:record"
)

// ─── async messages ──────────────────────────────────────────────────────────

type cartLoadedMsg struct {
	cart    cartdto.CartOutput
	summary checkoutdto.SummaryOutput
	status  string
	err     error
}

type interestLoadedMsg struct {
	log     interestdto.LogOutput
	ranking []interestdto.RankingEntry
	status  string
	err     error
}

type episodesLoadedMsg struct {
	episodes []podcastdto.EpisodeOutput
	err      error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Remove   key.Binding
	Clear    key.Binding
	Shipping key.Binding
	Record   key.Binding
	Repeat   key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		Remove:   key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove line")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear cart")),
		Shipping: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle shipping")),
		Record:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "record interest")),
		Repeat:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "+1 selected variant")),
		Reset:    key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset interest")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Add, k.Record, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Up, k.Down},
		{k.Add, k.Remove, k.Clear, k.Shipping},
		{k.Record, k.Repeat, k.Reset},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. State changes go through the ports;
// every mutation reloads the affected view from storage.
type Model struct {
	cart     cartPort
	interest interestPort
	checkout checkoutPort
	podcast  podcastPort

	cartView     cartview.Model
	interestView interestview.Model
	podcastView  podcastview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	prompt    components.Prompt
	status    string
	width     int
	height    int
}

func NewModel(cart cartPort, interest interestPort, checkout checkoutPort, podcast podcastPort) Model {
	return Model{
		cart:         cart,
		interest:     interest,
		checkout:     checkout,
		podcast:      podcast,
		cartView:     cartview.New(),
		interestView: interestview.New(),
		podcastView:  podcastview.New(),
		activeTab:    tabCart,
		keys:         defaultKeys(),
		help:         help.New(),
		prompt:       components.NewPrompt(),
		status:       "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.reloadCart(""), m.reloadInterest(""), m.loadEpisodes())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width

	case cartLoadedMsg:
		if msg.err != nil {
			m.status = "cart: " + msg.err.Error()
			return m, nil
		}
		m.cartView.SetCart(msg.cart, msg.summary)
		if msg.status != "" {
			m.status = msg.status
		}

	case interestLoadedMsg:
		if msg.err != nil {
			m.status = "interest: " + msg.err.Error()
			return m, nil
		}
		m.interestView.SetLog(msg.log, msg.ranking)
		if msg.status != "" {
			m.status = msg.status
		}

	case episodesLoadedMsg:
		if msg.err != nil {
			m.status = "podcast: " + msg.err.Error()
			return m, nil
		}
		m.podcastView.SetEpisodes(msg.episodes)

	case components.PromptSubmitMsg:
		return m.submitPrompt(msg)

	case components.PromptCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Tab):
		m.activeTab = (m.activeTab + 1) % tabCount
	case msg.String() == "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.move(-1)
	case key.Matches(msg, m.keys.Down):
		m.move(1)
	case key.Matches(msg, m.keys.Add):
		cmd := m.prompt.Open(promptAddItem, "In den Warenkorb", "an:care Stick Calm")
		return m, cmd
	case key.Matches(msg, m.keys.Record):
		cmd := m.prompt.Open(promptRecordInterest, "Interesse erfassen", "variant")
		return m, cmd
	case m.activeTab == tabCart && key.Matches(msg, m.keys.Remove):
		if index, ok := m.cartView.Selected(); ok {
			return m, m.removeAt(index)
		}
	case m.activeTab == tabCart && key.Matches(msg, m.keys.Clear):
		return m, m.clearCart()
	case m.activeTab == tabCart && key.Matches(msg, m.keys.Shipping):
		return m, m.toggleShipping()
	case m.activeTab == tabInterest && key.Matches(msg, m.keys.Repeat):
		if variant, ok := m.interestView.SelectedVariant(); ok {
			return m, m.record(variant)
		}
	case m.activeTab == tabInterest && key.Matches(msg, m.keys.Reset):
		return m, m.resetInterest()
	}
	return m, nil
}

func (m *Model) move(delta int) {
	switch m.activeTab {
	case tabCart:
		m.cartView.Move(delta)
	case tabInterest:
		m.interestView.Move(delta)
	}
}

func (m Model) submitPrompt(msg components.PromptSubmitMsg) (tea.Model, tea.Cmd) {
	switch msg.Purpose {
	case promptAddItem:
		if msg.Value == "" {
			m.status = "nothing added"
			return m, nil
		}
		m.activeTab = tabCart
		return m, m.addItem(msg.Value)
	case promptRecordInterest:
		m.activeTab = tabInterest
		return m, m.record(msg.Value)
	}
	return m, nil
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) reloadCart(status string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		cart, err := m.cart.Show(ctx)
		if err != nil {
			return cartLoadedMsg{err: err}
		}
		summary, err := m.checkout.Show(ctx)
		return cartLoadedMsg{cart: cart, summary: summary, status: status, err: err}
	}
}

func (m Model) reloadInterest(status string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		log, err := m.interest.Show(ctx)
		if err != nil {
			return interestLoadedMsg{err: err}
		}
		ranking, err := m.interest.Ranking(ctx)
		return interestLoadedMsg{log: log, ranking: ranking, status: status, err: err}
	}
}

func (m Model) loadEpisodes() tea.Cmd {
	return func() tea.Msg {
		episodes, err := m.podcast.List(context.Background())
		return episodesLoadedMsg{episodes: episodes, err: err}
	}
}

func (m Model) addItem(name string) tea.Cmd {
	return func() tea.Msg {
		item, err := m.cart.AddByName(context.Background(), name)
		if err != nil {
			return cartLoadedMsg{err: err}
		}
		return m.reloadCart(fmt.Sprintf("added %s", item.Name))()
	}
}

func (m Model) removeAt(index int) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.cart.RemoveAt(context.Background(), index); err != nil {
			return cartLoadedMsg{err: err}
		}
		return m.reloadCart("line removed")()
	}
}

func (m Model) clearCart() tea.Cmd {
	return func() tea.Msg {
		if err := m.cart.Clear(context.Background()); err != nil {
			return cartLoadedMsg{err: err}
		}
		return m.reloadCart("cart cleared")()
	}
}

func (m Model) toggleShipping() tea.Cmd {
	next := "pickup"
	if m.cartView.Shipping() == "pickup" {
		next = "dhl"
	}
	return func() tea.Msg {
		if _, err := m.checkout.SetShipping(context.Background(), next); err != nil {
			return cartLoadedMsg{err: err}
		}
		return m.reloadCart("shipping: " + next)()
	}
}

func (m Model) record(variant string) tea.Cmd {
	return func() tea.Msg {
		log, err := m.interest.Record(context.Background(), variant, "", "tui", "")
		if err != nil {
			return interestLoadedMsg{err: err}
		}
		last := log.Events[len(log.Events)-1]
		return m.reloadInterest(fmt.Sprintf("interest saved: %s (%d)", last.Variant, log.Totals[last.Variant]))()
	}
}

func (m Model) resetInterest() tea.Cmd {
	return func() tea.Msg {
		if err := m.interest.Reset(context.Background()); err != nil {
			return interestLoadedMsg{err: err}
		}
		return m.reloadInterest("interest reset")()
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	default:
		content = m.activeView()
	}
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar))
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabCart:
		return m.cartView.View()
	case tabInterest:
		return m.interestView.View()
	case tabPodcast:
		return m.podcastView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i, label := range tabLabels {
		if tabID(i) == m.activeTab {
			parts[i] = theme.TabActive.Render(label)
			continue
		}
		parts[i] = theme.TabInactive.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderStatusBar() string {
	return theme.Muted.Render(m.status) + "  " + m.help.View(m.keys)
}
