package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mod-manager/internal/service"
	"github.com/MKhiriev/go-mod-manager/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests; the system clipboard is not
// available on headless machines.
var writeClipboard = clipboard.WriteAll

// browserModel lists catalog entries of the selected categories and lets
// the user install or remove them.
type browserModel struct {
	ctx     context.Context
	catalog service.CatalogService
	install service.InstallService
	feed    statusFeed

	categories []models.Category
	catIdx     int
	assets     []models.Asset
	installed  map[string]bool
	idx        int

	spinner spinner.Model
	busy    bool
	status  string
	failed  bool
}

func newBrowserModel(ctx context.Context, catalog service.CatalogService, install service.InstallService, feed statusFeed) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return browserModel{
		ctx:        ctx,
		catalog:    catalog,
		install:    install,
		feed:       feed,
		categories: models.Categories(),
		spinner:    s,
		busy:       true,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.feed.next(), waitForResult(m.catalog.FetchManifests(m.ctx, false)))
}

func (m browserModel) current() (models.Asset, bool) {
	if len(m.assets) == 0 || m.idx < 0 || m.idx >= len(m.assets) {
		return models.Asset{}, false
	}
	return m.assets[m.idx], true
}

func (m browserModel) isSelected(category models.Category) bool {
	for _, c := range m.catalog.Selected() {
		if c == category {
			return true
		}
	}
	return false
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case statusMsg:
		if msg.update.Message != "" {
			m.status = msg.update.Message
			m.failed = msg.update.State == models.InstallStateFailed
		}
		return m, m.feed.next()
	case resultMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.status, m.failed = msg.err.Error(), true
		case msg.result.Message != "":
			m.status, m.failed = msg.result.Message, !msg.result.Success
		}
		m.reload()
		return m, nil
	case catalogChangedMsg:
		m.busy = false
		if msg.err != nil {
			m.status, m.failed = msg.err.Error(), true
		}
		m.reload()
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.assets)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.left):
		if m.catIdx > 0 {
			m.catIdx--
		}
	case key.Matches(msg, keys.right):
		if m.catIdx < len(m.categories)-1 {
			m.catIdx++
		}
	case key.Matches(msg, keys.toggle):
		category := m.categories[m.catIdx]
		selected := !m.isSelected(category)
		m.busy = true
		return m, m.catalogCmd(func(ctx context.Context) error {
			return m.catalog.Select(ctx, category, selected)
		})
	case key.Matches(msg, keys.selectAll):
		selected := len(m.catalog.Selected()) < len(m.categories)
		m.busy = true
		return m, m.catalogCmd(func(ctx context.Context) error {
			return m.catalog.SelectAll(ctx, selected)
		})
	case key.Matches(msg, keys.refresh):
		m.busy = true
		return m, waitForResult(m.catalog.FetchManifests(m.ctx, true))
	case key.Matches(msg, keys.copy):
		asset, ok := m.current()
		if !ok {
			return m, nil
		}
		if err := writeClipboard(asset.AssetName); err != nil {
			m.status, m.failed = fmt.Sprintf("Failed to copy %s: %v", asset.AssetName, err), true
			return m, nil
		}
		m.status, m.failed = fmt.Sprintf("Copied %s to clipboard.", asset.AssetName), false
	case key.Matches(msg, keys.install):
		asset, ok := m.current()
		if !ok || m.install.Busy() {
			return m, nil
		}
		results, err := m.install.Install(m.ctx, asset)
		if err != nil {
			m.status, m.failed = err.Error(), true
			return m, nil
		}
		m.busy = true
		return m, waitForResult(results)
	case key.Matches(msg, keys.remove):
		asset, ok := m.current()
		if !ok || m.install.Busy() {
			return m, nil
		}
		m.busy = true
		ctx, install := m.ctx, m.install
		return m, func() tea.Msg {
			result, err := install.Remove(ctx, asset)
			return resultMsg{result: result, err: err}
		}
	}
	return m, nil
}

func (m browserModel) catalogCmd(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return catalogChangedMsg{err: fn(ctx)}
	}
}

// reload refreshes the asset list from the catalog view.
func (m *browserModel) reload() {
	m.assets = m.catalog.Filtered()
	m.installed = make(map[string]bool, len(m.assets))
	for _, asset := range m.assets {
		m.installed[asset.AssetName] = m.install.IsInstalled(asset)
	}
	if m.idx >= len(m.assets) {
		m.idx = max(len(m.assets)-1, 0)
	}
}

func (m browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Session Mod Manager"))
	if m.busy {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n\n")

	for i, category := range m.categories {
		mark := "[ ]"
		if m.isSelected(category) {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s %s", mark, category)
		if i == m.catIdx {
			label = selectedStyle.Render(label)
		}
		b.WriteString(label + "  ")
	}
	b.WriteString("\n\n")

	if len(m.assets) == 0 {
		b.WriteString(helpStyle.Render("No assets to show") + "\n")
	}
	for i, asset := range m.assets {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		installed := "   "
		if m.installed[asset.AssetName] {
			installed = "[i]"
		}
		line := fmt.Sprintf("%s%s %s by %s", cursor, installed, asset.Name, asset.Author)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if m.status != "" {
		style := successStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("\n" + style.Render(m.status) + "\n")
	}

	help := "←/→ category  space toggle  a all  r refresh  q quit"
	if asset, ok := m.current(); ok {
		help = fmt.Sprintf("enter %s  d %s  y copy  %s", strings.ToLower(asset.InstallLabel()), strings.ToLower(asset.RemoveLabel()), help)
	}
	b.WriteString("\n" + helpStyle.Render(help))

	return appStyle.Render(b.String()) + "\n"
}
