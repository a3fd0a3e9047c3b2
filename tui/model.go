// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielhkuo/algoviz/controllers"
	"github.com/danielhkuo/algoviz/models"
	"github.com/danielhkuo/algoviz/page"
)

// docChangedMsg signals that the page changed since the last render
type docChangedMsg struct{}

// clickDoneMsg carries the outcome of one click
type clickDoneMsg struct {
	err error
}

// Model is the interactive page: a text input bound to the page's input
// element, the button, and the error, steps, and result regions
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	ctrl    controllers.Controller
	doc     *page.Document
	title   string
	inputEl *page.Element
	modeEl  *page.Element
	button  *page.Element

	input   textinput.Model
	styles  Styles
	changes chan struct{}
	width   int
}

// NewModel builds the interactive page for ctrl. Clicks run under ctx and
// are cancelled when the user quits.
func NewModel(ctx context.Context, ctrl controllers.Controller, styles Styles) Model {
	doc := ctrl.Document()
	ctx, cancel := context.WithCancel(ctx)

	m := Model{
		ctx:     ctx,
		cancel:  cancel,
		ctrl:    ctrl,
		doc:     doc,
		styles:  styles,
		changes: make(chan struct{}, 1),
	}

	ti := textinput.New()
	ti.Prompt = "> "
	if el := doc.ByID(page.IDNumbersInput); el != nil {
		m.title = "Counting Sort Visualizer"
		m.inputEl = el
		m.button = doc.ByID(page.IDSortButton)
		ti.Placeholder = "5, 3, 1, 4, 1, 5, 9"
	} else {
		m.title = "Parity Bit Generator"
		m.inputEl = doc.ByID(page.IDBinaryInput)
		m.modeEl = doc.ByID(page.IDParityType)
		m.button = doc.ByID(page.IDParityButton)
		ti.Placeholder = "1011"
	}
	ti.SetValue(m.inputEl.Value())
	ti.Focus()
	m.input = ti

	// Coalesce bursts of changes into one pending render
	doc.Subscribe(func(page.Event) {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	return m
}

func waitForChange(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-changes
		return docChangedMsg{}
	}
}

func click(ctx context.Context, ctrl controllers.Controller) tea.Cmd {
	return func() tea.Msg {
		return clickDoneMsg{err: ctrl.Click(ctx)}
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(m.changes))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancel()
			return m, tea.Quit
		case "enter":
			if m.button.Disabled() {
				return m, nil
			}
			m.inputEl.SetValue(m.input.Value())
			return m, click(m.ctx, m.ctrl)
		case "tab":
			if m.modeEl != nil && !m.button.Disabled() {
				m.modeEl.SetValue(toggleMode(m.modeEl.Value()))
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case docChangedMsg:
		return m, waitForChange(m.changes)

	case clickDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, controllers.ErrBusy) {
			slog.Debug("click finished with error", "error", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func toggleMode(mode string) string {
	if mode == models.ParityOdd {
		return models.ParityEven
	}
	return models.ParityOdd
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(m.title))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Label.Render(m.inputEl.Label()))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")

	if m.modeEl != nil {
		sb.WriteString(m.styles.Label.Render(m.modeEl.Label() + ": "))
		sb.WriteString(m.styles.Value.Render(strings.ToUpper(m.modeEl.Value())))
		sb.WriteString("\n")
	}

	label := "[ " + m.button.Text() + " ]"
	if m.button.Disabled() {
		sb.WriteString(m.styles.ButtonBusy.Render(label))
	} else {
		sb.WriteString(m.styles.Button.Render(label))
	}
	sb.WriteString("\n\n")

	if el := m.doc.ByID(page.IDErrorMsg); el != nil && el.Visible() {
		sb.WriteString(m.styles.Error.Render(el.Text()))
		sb.WriteString("\n\n")
	}

	if container := m.doc.ByID(page.IDStepsContainer); container != nil && container.Visible() {
		sb.WriteString(m.styles.Title.Render(container.Label()))
		sb.WriteString("\n")
		for _, item := range m.doc.ByID(page.IDStepsList).Children() {
			if item.Visible() {
				sb.WriteString(m.styles.renderStep(item.Text()))
				sb.WriteString("\n")
			}
		}
		sb.WriteString("\n")
	}

	if box := m.doc.ByID(page.IDResultBox); box != nil && box.Visible() {
		sb.WriteString(m.styles.renderResult(box))
		sb.WriteString("\n\n")
	}

	help := "enter: run • esc: quit"
	if m.modeEl != nil {
		help = "enter: run • tab: toggle parity • esc: quit"
	}
	sb.WriteString(m.styles.Help.Render(help))
	sb.WriteString("\n")
	return sb.String()
}

// Run shows the interactive page until the user quits
func Run(ctx context.Context, ctrl controllers.Controller, styles Styles) error {
	m := NewModel(ctx, ctrl, styles)
	defer m.cancel()

	_, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
