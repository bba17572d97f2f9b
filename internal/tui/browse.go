// Package tui provides the interactive skill browser.
//
// The browser only runs when a human is at an interactive terminal; the
// list command is the non-interactive equivalent.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/kennyg/skillbrowser/internal/cache"
	"github.com/kennyg/skillbrowser/internal/catalog"
	"github.com/kennyg/skillbrowser/internal/skill"
	"github.com/kennyg/skillbrowser/internal/translate"
	"github.com/kennyg/skillbrowser/internal/ui"
)

// ShouldRun reports whether the browser can take over the terminal
func ShouldRun(jsonOutput bool) bool {
	if jsonOutput {
		return false
	}
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SkillsMsg replaces the browsed skills, e.g. after a rescan
type SkillsMsg []skill.Info

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ui.Gold)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(ui.Purple)
	normalStyle   = lipgloss.NewStyle().Foreground(ui.White)
	descStyle     = lipgloss.NewStyle().Foreground(ui.Gray)
	dimStyle      = lipgloss.NewStyle().Foreground(ui.DarkGray)
	filterOnStyle = lipgloss.NewStyle().Foreground(ui.Black).Background(ui.Gold).Padding(0, 1)
	filterStyle   = lipgloss.NewStyle().Foreground(ui.Gray).Background(ui.DarkGray).Padding(0, 1)
)

// Options wires the browser to persistence and the clipboard
type Options struct {
	Skills []skill.Info
	Cache  cache.Cache
	// Save persists the cache after a toggle
	Save func(cache.Cache) error
	// Copy places text on the clipboard
	Copy func(string) error
}

type model struct {
	skills  []skill.Info
	cache   cache.Cache
	items   []catalog.Item
	visible []catalog.Item

	search        textinput.Model
	favoritesOnly bool
	cursor        int
	offset        int
	height        int
	width         int

	save func(cache.Cache) error
	copy func(string) error

	status   string
	quitting bool
}

func newModel(opts Options) model {
	ti := textinput.New()
	ti.Placeholder = "搜索 Skill..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 128
	ti.Focus()

	c := opts.Cache
	if c == nil {
		c = cache.New()
	}

	m := model{
		skills: opts.Skills,
		cache:  c,
		search: ti,
		save:   opts.Save,
		copy:   opts.Copy,
		height: 24,
		width:  80,
	}
	m.rebuild()
	return m
}

// rebuild joins skills with the cache and reapplies the filter
func (m *model) rebuild() {
	m.items = catalog.Arrange(catalog.Build(m.skills, m.cache))
	m.refilter()
}

func (m *model) refilter() {
	visible, err := catalog.Filter(m.items, catalog.Query{
		Text:          m.search.Value(),
		FavoritesOnly: m.favoritesOnly,
	})
	if err != nil {
		visible = nil
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampOffset()
}

func (m *model) selected() (catalog.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalog.Item{}, false
	}
	return m.visible[m.cursor], true
}

// rows is the number of items that fit on screen; each takes two lines
func (m model) rows() int {
	r := (m.height - 7) / 2
	if r < 1 {
		return 1
	}
	return r
}

func (m *model) clampOffset() {
	rows := m.rows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.clampOffset()
		return m, nil

	case SkillsMsg:
		m.skills = []skill.Info(msg)
		m.rebuild()
		m.status = fmt.Sprintf("已刷新：共 %d 个 Skills", len(m.skills))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "ctrl+k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampOffset()
			return m, nil
		case "down", "ctrl+j":
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			m.clampOffset()
			return m, nil
		case "tab":
			m.favoritesOnly = !m.favoritesOnly
			m.cursor = 0
			m.refilter()
			return m, nil
		case "ctrl+f":
			return m.toggle(m.cache.ToggleFavorite, "设为常用", "取消常用")
		case "ctrl+t":
			return m.toggle(m.cache.TogglePinned, "已置顶", "取消置顶")
		case "enter":
			return m.copySelected()
		}
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.refilter()
	}
	return m, cmd
}

func (m model) toggle(flip func(string) bool, onMsg, offMsg string) (tea.Model, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		return m, nil
	}
	id := item.ID
	on := flip(id)
	m.rebuild()

	// Keep the cursor on the same skill after reordering.
	for i, v := range m.visible {
		if v.ID == id {
			m.cursor = i
			break
		}
	}
	m.clampOffset()

	if on {
		m.status = onMsg + ": " + id
	} else {
		m.status = offMsg + ": " + id
	}
	if m.save != nil {
		if err := m.save(m.cache); err != nil {
			m.status = "保存失败: " + err.Error()
		}
	}
	return m, nil
}

func (m model) copySelected() (tea.Model, tea.Cmd) {
	item, ok := m.selected()
	if !ok {
		return m, nil
	}
	cmd := item.Command()
	if m.copy == nil {
		m.status = cmd
		return m, nil
	}
	if err := m.copy(cmd); err != nil {
		m.status = "复制失败"
		return m, nil
	}
	m.status = "已复制: " + cmd
	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	filter := filterStyle.Render("☆ 只看常用")
	if m.favoritesOnly {
		filter = filterOnStyle.Render("★ 已筛选常用")
	}
	b.WriteString(fmt.Sprintf("\n  %s  %s\n", titleStyle.Render("Skill 浏览器"), filter))
	b.WriteString("  " + m.search.View() + "\n\n")

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("  未找到 Skills") + "\n")
	}

	descWidth := m.width - 8
	if descWidth < 20 {
		descWidth = 20
	}

	end := m.offset + m.rows()
	if end > len(m.visible) {
		end = len(m.visible)
	}
	for i := m.offset; i < end; i++ {
		item := m.visible[i]
		cursor := "  "
		nameStyle := normalStyle
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
			nameStyle = selectedStyle
		}

		line := cursor + ui.FavoriteMark(item.IsFavorite) + " "
		if pin := ui.PinnedMark(item.IsPinned); pin != "" {
			line += pin + " "
		}
		line += nameStyle.Render("📦 " + item.DisplayName())
		if t := ui.TranslatedMark(item.Translated()); t != "" {
			line += " " + t
		}
		b.WriteString("  " + line + "\n")
		b.WriteString("      " + descStyle.Render(ui.Truncate(summaryLine(item), descWidth)) + "\n")
	}

	b.WriteString("\n")
	footer := fmt.Sprintf("  共 %d 个 Skills", len(m.items))
	if len(m.visible) != len(m.items) {
		footer = fmt.Sprintf("  %d / %d 个 Skills", len(m.visible), len(m.items))
	}
	b.WriteString(dimStyle.Render(footer))
	if m.status != "" {
		b.WriteString("  " + descStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  [↑↓] 移动  [Enter] 复制命令  [Ctrl+F] 常用  [Ctrl+T] 置顶  [Tab] 只看常用  [Esc] 退出") + "\n")

	return b.String()
}

// summaryLine is the one-line description shown under a skill name
func summaryLine(item catalog.Item) string {
	desc := item.DisplayDescription()
	if intro, timing, ok := translate.IntroAndTiming(desc); ok {
		if intro != "" {
			return intro
		}
		return timing
	}
	return ui.FirstLine(desc)
}

// Run starts the browser and blocks until the user quits.
// Values received on refresh replace the skill list while running.
func Run(ctx context.Context, opts Options, refresh <-chan []skill.Info) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if refresh != nil {
		go func() {
			for skills := range refresh {
				p.Send(SkillsMsg(skills))
			}
		}()
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
