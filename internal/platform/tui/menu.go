package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
)

// Selection is what the player picked in the start menu.
type Selection struct {
	Mode       brickbreaker.Mode
	Level      int // zero-based start level, -1 for the configured one
	Difficulty config.DifficultyPreset
}

type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entrySelectLevel
	entryDifficulty
	entryScores
	entryCount
)

var difficulties = []config.DifficultyPreset{
	config.DifficultyNormal,
	config.DifficultyEasy,
	config.DifficultyHard,
	config.DifficultyFixed,
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor        int
	levelCursor   int
	difficulty    int
	inLevelSelect bool
	layout        brickbreaker.LevelLayout
	width         int
	height        int
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	selection     *Selection
	scoreboard    bool
	quitting      bool
}

// NewMenuModel creates a new menu model. The preset is preselected when it
// names a known difficulty.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	gameCfg, err := brickbreaker.LoadConfig()
	if err != nil {
		gameCfg = config.DefaultBrickBreakerConfig()
	}

	m := MenuModel{
		layout:    brickbreaker.NewLevelLayout(gameCfg),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	for i, d := range difficulties {
		if d == preset {
			m.difficulty = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < int(entryCount)-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		if menuEntry(m.cursor) == entryDifficulty {
			m.cycleDifficulty(action == MenuActionRight)
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuEntry(m.cursor) {
		case entryCampaign:
			m.choose(brickbreaker.ModeCampaign, -1)
			return m, tea.Quit
		case entryEndless:
			m.choose(brickbreaker.ModeEndless, -1)
			return m, tea.Quit
		case entrySelectLevel:
			m.inLevelSelect = true
		case entryDifficulty:
			m.cycleDifficulty(true)
		case entryScores:
			m.scoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < brickbreaker.TotalLevels-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choose(brickbreaker.ModeCampaign, m.levelCursor)
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(forward bool) {
	n := len(difficulties)
	if forward {
		m.difficulty = (m.difficulty + 1) % n
	} else {
		m.difficulty = (m.difficulty + n - 1) % n
	}
}

func (m *MenuModel) choose(mode brickbreaker.Mode, level int) {
	m.selection = &Selection{
		Mode:       mode,
		Level:      level,
		Difficulty: difficulties[m.difficulty],
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("B R I C K   B R E A K E R"), m.width))
	b.WriteString("\n\n")

	labels := []string{
		fmt.Sprintf("Campaign (%d levels)", brickbreaker.TotalLevels),
		"Endless",
		"Select Level...",
		fmt.Sprintf("Difficulty: < %s >", difficulties[m.difficulty]),
		"High Scores",
	}
	for i, label := range labels {
		line := "  " + label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + label)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Up/Down: Navigate  |  Left/Right: Difficulty  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i := range brickbreaker.TotalLevels {
		desc := levelLine(brickbreaker.DescribeLevel(i, m.layout))
		line := "  " + desc
		if i == m.levelCursor {
			line = menuCursorStyle.Render("> " + desc)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Start  |  Esc: Back  |  Q: Quit"), m.width))
	return b.String()
}

// levelLine summarizes a level for the picker.
func levelLine(info brickbreaker.LevelInfo) string {
	var tags []string
	if info.MovingBricks {
		tags = append(tags, "moving")
	}
	if info.Indestructible {
		tags = append(tags, "steel")
	}
	if info.DiagonalGaps || info.StripeGaps || info.RandomGaps {
		tags = append(tags, "gaps")
	}
	line := fmt.Sprintf("%2d. %2d rows  hp %d-%d", info.Index+1, info.Rows, info.MinHP, info.MaxHP)
	if len(tags) > 0 {
		line += "  " + strings.Join(tags, ",")
	}
	return line
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selection
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Selection       *Selection
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the start menu and returns the player's choice.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg, preset), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.Selection = m.Selected()
	default:
		result.Quit = true
	}
	return result, nil
}
