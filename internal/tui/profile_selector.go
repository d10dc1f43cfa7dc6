package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cmdln/dot-dev/internal/apperr"
	"github.com/cmdln/dot-dev/internal/profile"
)

type ProfileItem struct {
	name    string
	profile profile.Profile
}

func (i ProfileItem) FilterValue() string { return i.name }
func (i ProfileItem) Title() string       { return i.name }
func (i ProfileItem) Description() string {
	var parts []string

	if i.name == profile.DefaultName {
		parts = append(parts, ProfileDefault.Render("default"))
	}
	if i.profile.Description != "" {
		parts = append(parts, i.profile.Description)
	}
	parts = append(parts, MutedStyle.Render(countLabel(len(i.profile.Definitions))))

	return strings.Join(parts, " • ")
}

func countLabel(n int) string {
	if n == 1 {
		return "1 definition"
	}
	return fmt.Sprintf("%d definitions", n)
}

// ProfileItems lists every profile in cfg, the default first
func ProfileItems(cfg profile.Config) []ProfileItem {
	names := cfg.Names()
	items := make([]ProfileItem, 0, len(names))
	for _, name := range names {
		p, _ := cfg.Profile(name)
		items = append(items, ProfileItem{name: name, profile: p})
	}
	return items
}

type ProfileSelectorModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func NewProfileSelector(items []ProfileItem) ProfileSelectorModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	const defaultWidth = 80
	const listHeight = 14

	l := list.New(listItems, list.NewDefaultDelegate(), defaultWidth, listHeight)
	l.Title = HeaderStyle.Render("Select profile")
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = HeaderStyle
	l.Styles.PaginationStyle = MutedStyle
	l.Styles.HelpStyle = MutedStyle

	return ProfileSelectorModel{list: l}
}

func (m ProfileSelectorModel) Init() tea.Cmd {
	return nil
}

func (m ProfileSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 2
		height := msg.Height - 4

		if width < 40 {
			width = 40
		}
		if height < 10 {
			height = 10
		}

		m.list.SetWidth(width)
		m.list.SetHeight(height)
		return m, nil

	case tea.KeyMsg:
		switch keypress := msg.String(); keypress {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			// Let the list commit a filter first
			if m.list.FilterState() == list.Filtering {
				break
			}
			if i, ok := m.list.SelectedItem().(ProfileItem); ok {
				m.choice = i.name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ProfileSelectorModel) View() string {
	if m.choice != "" {
		return SuccessStyle.Render(fmt.Sprintf("Selected profile: %s", m.choice))
	}
	if m.quitting {
		return MutedStyle.Render("Operation cancelled.")
	}
	return "\n" + m.list.View()
}

// Choice is the selected profile name, empty until enter is pressed
func (m ProfileSelectorModel) Choice() string {
	return m.choice
}

// SelectProfile shows an interactive picker over the profiles in cfg
func SelectProfile(cfg profile.Config) (string, error) {
	model := NewProfileSelector(ProfileItems(cfg))
	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := program.Run()
	if err != nil {
		return "", apperr.IO("select profile", err)
	}

	m, ok := finalModel.(ProfileSelectorModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", finalModel)
	}
	if m.choice == "" {
		return "", apperr.Interrupted("select profile")
	}
	return m.choice, nil
}
