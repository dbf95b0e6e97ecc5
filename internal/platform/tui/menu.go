package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// MenuItem is one entry of the main menu.
type MenuItem struct {
	Label  string
	GameID string // Empty for entries that open a sub-screen
}

// Main menu entries
var menuItems = []MenuItem{
	{Label: "Campaign", GameID: platformer.GameID},
	{Label: "Endless", GameID: platformer.EndlessGameID},
	{Label: "Select Stage..."},
	{Label: "Scoreboard"},
}

const (
	itemSelectStage = 2
	itemScoreboard  = 3
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	cursor         int
	stageCursor    int
	inStageSelect  bool
	stages         int // Stages in a campaign
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user picks a mode
	startStage     int
	openScoreboard bool // True if user asked for the scoreboard
}

// NewMenuModel creates a new menu model for a campaign of stages stages.
func NewMenuModel(cfg core.RuntimeConfig, stages int) MenuModel {
	return MenuModel{
		stages:     max(1, stages),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		startStage: 1,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inStageSelect {
		return m.handleStageKey(action)
	}

	switch action {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		switch m.cursor {
		case itemSelectStage:
			m.inStageSelect = true
			m.stageCursor = 0
		case itemScoreboard:
			m.openScoreboard = true
			return m, tea.Quit
		default:
			selected := menuItems[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleStageKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp, MenuActionLeft:
		if m.stageCursor > 0 {
			m.stageCursor--
		}
	case MenuActionDown, MenuActionRight:
		if m.stageCursor < m.stages-1 {
			m.stageCursor++
		}
	case MenuActionSelect:
		selected := menuItems[0]
		m.selected = &selected
		m.startStage = m.stageCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inStageSelect = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("  P L A T F O R M E R  ", m.width))
	b.WriteString("\n\n")

	if m.inStageSelect {
		b.WriteString(centerText("Select a stage", m.width))
		b.WriteString("\n\n")
		for i := range m.stages {
			cursor := "  "
			if i == m.stageCursor {
				cursor = "> "
			}
			b.WriteString(centerText(fmt.Sprintf("%sStage %d", cursor, i+1), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back  |  Q: Quit", m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		label := item.Label
		if i == 0 {
			label = fmt.Sprintf("%s (%d stages)", label, m.stages)
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// StartStage returns the stage the selected mode starts on.
func (m MenuModel) StartStage() int {
	return m.startStage
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	StartStage      int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final model state to a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config(), StartStage: m.startStage}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, stages int) (MenuResult, error) {
	model := NewMenuModel(cfg, stages)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
