package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/phasebounce/internal/raster"
	"github.com/san-kum/phasebounce/internal/scene"
)

const (
	defaultCols = 64
	defaultRows = 32
	// title and status lines
	chromeRows = 2
)

type TickMsg time.Time

// Model is a bubbletea model that plays a scene in the terminal.
type Model struct {
	scene   *scene.Scene
	frame   *raster.Frame
	canvas  *Canvas
	dt      float64
	fps     int
	running bool
	theme   int
}

// NewModel renders s into a private frame; dt is the simulated step per
// frame and fps the frame rate.
func NewModel(s *scene.Scene, dt float64, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	w, h := s.Size()
	m := Model{
		scene:   s,
		frame:   raster.Alloc(w, h),
		canvas:  NewCanvas(defaultCols, defaultRows),
		dt:      dt,
		fps:     fps,
		running: true,
	}
	m.draw()
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.scene.Reset()
			m.draw()
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.scene.SetPalette(Themes[m.theme].Palette)
			m.draw()
		}
	case tea.WindowSizeMsg:
		m.fit(msg.Width, msg.Height)
		m.draw()
	case TickMsg:
		if m.running {
			m.scene.Tick(m.dt)
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

// fit sizes the canvas to the terminal, keeping the frame aspect ratio with
// two sub-pixels per cell vertically.
func (m *Model) fit(width, height int) {
	w, h := m.scene.Size()
	rows := max(height-chromeRows, 1)
	cols := max(rows*2*w/h, 1)
	if cols > width && width > 0 {
		cols = width
		rows = max(cols*h/(2*w), 1)
	}
	m.canvas.Resize(cols, rows)
}

func (m *Model) draw() {
	m.scene.Draw(m.frame)
	m.canvas.Sample(m.frame)
}

// WithTheme switches to the named theme and recolors the scene. Unknown
// names select the classic theme.
func (m Model) WithTheme(name string) Model {
	t := GetTheme(name)
	for i := range Themes {
		if Themes[i].Name == t.Name {
			m.theme = i
		}
	}
	m.scene.SetPalette(t.Palette)
	m.draw()
	return m
}

// Theme returns the active theme.
func (m Model) Theme() Theme { return Themes[m.theme] }

// Running reports whether the simulation advances on each frame.
func (m Model) Running() bool { return m.running }

// View renders the TUI interface.
func (m Model) View() string {
	theme := m.Theme()
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	var s strings.Builder
	s.WriteString(theme.title(strings.ToUpper(m.scene.Title())))
	s.WriteString(theme.status(status))
	s.WriteByte('\n')
	s.WriteString(m.canvas.String())
	s.WriteByte('\n')
	s.WriteString(theme.help(fmt.Sprintf("tick %d  t=%.1fs  particles %d  %s  [space] pause [r] reset [t] theme [q] quit",
		m.scene.Ticks(), m.scene.Elapsed(), m.scene.Len(), theme.Name)))
	return s.String()
}

// Run starts the terminal viewer and blocks until the user quits. An empty
// theme keeps the scene's own palette.
func Run(s *scene.Scene, dt float64, fps int, theme string) error {
	m := NewModel(s, dt, fps)
	if theme != "" {
		m = m.WithTheme(theme)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
