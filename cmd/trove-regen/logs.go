package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/ucodery/trove-classifiers/pkg/events"
)

type eventOutputStyle int

const (
	eventOutputPlain eventOutputStyle = iota
	eventOutputRich
)

// eventPrinter renders regeneration run events. It is an events.Handler
// and may be handed straight to the regen pipeline.
type eventPrinter struct {
	style eventOutputStyle
	out   io.Writer
	mu    sync.Mutex

	levelStyles map[events.Level]lipgloss.Style
	stageStyle  lipgloss.Style
}

func newEventPrinter(style eventOutputStyle, out io.Writer) *eventPrinter {
	p := &eventPrinter{
		style: style,
		out:   out,
	}

	if style != eventOutputRich {
		return p
	}

	colorEnabled := false
	if f, ok := out.(*os.File); ok {
		colorEnabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !colorEnabled {
		return p
	}

	p.levelStyles = map[events.Level]lipgloss.Style{
		events.Debug: lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")), // muted
		events.Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")), // blue
		events.Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")), // red
	}
	p.stageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")) // grey
	return p
}

func (p *eventPrinter) Handle(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	line := formatEventPlain(e)
	if p.style == eventOutputRich && p.levelStyles != nil {
		levelStyle, ok := p.levelStyles[e.Level]
		if ok {
			line = formatEventRich(e, levelStyle.Render(e.Level.String()), p.stageStyle)
		}
	}

	fmt.Fprintln(p.out, line)
}

func formatEventPlain(e events.Event) string {
	var b strings.Builder

	b.WriteString(e.Level.String())
	if e.Stage != "" {
		b.WriteString(" [")
		b.WriteString(e.Stage)
		b.WriteString("]")
	}
	b.WriteString(": ")

	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func formatEventRich(e events.Event, levelToken string, stageStyle lipgloss.Style) string {
	var b strings.Builder

	b.WriteString(levelToken)
	if e.Stage != "" {
		b.WriteString(" ")
		b.WriteString(stageStyle.Render("[" + e.Stage + "]"))
	}
	b.WriteString(": ")

	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}
