// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dirdiff/dirdiff/internal/differ"
	"github.com/dirdiff/dirdiff/internal/highlight"
	"github.com/dirdiff/dirdiff/internal/scanner"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	leftOnlyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
	rightOnlyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	missingStyle   = lipgloss.NewStyle().Faint(true)
	lineNoStyle    = lipgloss.NewStyle().Faint(true).Width(5).Align(lipgloss.Right).MarginRight(1)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// Browse opens the interactive pair browser over a scan result. It returns
// when the user quits.
func Browse(result *scanner.Result) error {
	if len(result.Pairs) == 0 {
		fmt.Println("No significant differences to view.")
		return nil
	}
	_, err := tea.NewProgram(newModel(result), tea.WithAltScreen()).Run()
	return err
}

type model struct {
	result    *scanner.Result
	index     int
	highlight bool
	width     int
	height    int
	left      viewport.Model
	right     viewport.Model
	loadErr   error
}

func newModel(result *scanner.Result) model {
	return model{
		result: result,
		left:   viewport.New(0, 0),
		right:  viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return tea.WindowSize() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.loadPair()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "n", "right":
			if m.index < len(m.result.Pairs)-1 {
				m.index++
				m.loadPair()
			}
		case "p", "left":
			if m.index > 0 {
				m.index--
				m.loadPair()
			}
		case "s":
			m.highlight = !m.highlight
			m.loadPair()
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-m.left.Height / 2)
		case "pgdown", " ":
			m.scrollBy(m.left.Height / 2)
		case "g":
			m.left.GotoTop()
			m.right.GotoTop()
		case "G":
			m.left.GotoBottom()
			m.right.GotoBottom()
		}
	}
	return m, nil
}

func (m model) View() string {
	pair := m.result.Pairs[m.index]

	header := headerStyle.Render(fmt.Sprintf("%s  [%s]  pair %d of %d",
		pair.RelPath, pair.Reason, m.index+1, len(m.result.Pairs)))

	if m.loadErr != nil {
		return header + "\n\n" + leftOnlyStyle.Render(m.loadErr.Error()) +
			"\n\n" + m.helpLine()
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		m.left.View(),
		" │ ",
		m.right.View(),
	)

	return header + "\n" + panes + "\n" + m.helpLine()
}

func (m model) helpLine() string {
	return helpStyle.Render("n/p: pair  ↑/↓: scroll  s: syntax  g/G: top/bottom  q: quit")
}

// scrollBy moves both panes in lockstep.
func (m *model) scrollBy(lines int) {
	m.left.SetYOffset(m.left.YOffset + lines)
	m.right.SetYOffset(m.right.YOffset + lines)
}

// resize recomputes the pane geometry from the window size.
func (m *model) resize() {
	paneWidth := (m.width - 3) / 2
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 3
	if paneHeight < 5 {
		paneHeight = 5
	}
	m.left.Width = paneWidth
	m.left.Height = paneHeight
	m.right.Width = paneWidth
	m.right.Height = paneHeight
}

// loadPair reads the current pair's contents and rebuilds both panes.
func (m *model) loadPair() {
	pair := m.result.Pairs[m.index]
	m.loadErr = nil

	leftContent, rightContent, err := readSides(pair)
	if err != nil {
		m.loadErr = err
		return
	}

	leftPane, rightPane := buildPanes(pair.RelPath, leftContent, rightContent, m.highlight)
	m.left.SetContent(strings.Join(leftPane, "\n"))
	m.right.SetContent(strings.Join(rightPane, "\n"))
	m.left.GotoTop()
	m.right.GotoTop()
}

// readSides loads both contents of a pair; an absent side reads as empty.
func readSides(pair scanner.Pair) (string, string, error) {
	var left, right string
	if pair.Left != "" {
		content, err := os.ReadFile(pair.Left)
		if err != nil {
			return "", "", fmt.Errorf("read left: %w", err)
		}
		left = string(content)
	}
	if pair.Right != "" {
		content, err := os.ReadFile(pair.Right)
		if err != nil {
			return "", "", fmt.Errorf("read right: %w", err)
		}
		right = string(content)
	}
	return left, right, nil
}

// buildPanes renders the alignment of two contents into synchronized pane
// lines. Row i of the left pane always corresponds to row i of the right
// pane, so the panes scroll in lockstep. Changed lines carry diff colors;
// unchanged lines optionally carry syntax colors instead.
func buildPanes(relPath, leftContent, rightContent string, highlighted bool) (left, right []string) {
	aligned := differ.Align(leftContent, rightContent)

	var leftSyntax, rightSyntax []string
	if highlighted {
		leftSyntax = highlight.Lines(leftContent, relPath, differ.SplitLines(leftContent))
		rightSyntax = highlight.Lines(rightContent, relPath, differ.SplitLines(rightContent))
	}

	filler := missingStyle.Render("     ~")
	for _, dl := range aligned {
		switch dl.Kind {
		case differ.Unchanged:
			leftText, rightText := dl.Text, dl.Text
			if highlighted {
				leftText = leftSyntax[dl.LeftNo-1]
				rightText = rightSyntax[dl.RightNo-1]
			}
			left = append(left, lineNoStyle.Render(fmt.Sprint(dl.LeftNo))+leftText)
			right = append(right, lineNoStyle.Render(fmt.Sprint(dl.RightNo))+rightText)
		case differ.LeftOnly:
			left = append(left, lineNoStyle.Render(fmt.Sprint(dl.LeftNo))+leftOnlyStyle.Render(dl.Text))
			right = append(right, filler)
		case differ.RightOnly:
			left = append(left, filler)
			right = append(right, lineNoStyle.Render(fmt.Sprint(dl.RightNo))+rightOnlyStyle.Render(dl.Text))
		}
	}
	return left, right
}
