// Command dolly-demo runs the motion controller against a simulated page
// in the terminal: scroll with the keyboard, nudge the pointer, watch the
// published render hints interpolate live. With -film it records the run
// and writes a film-strip PNG plus an HTML report on quit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/teranos/dolly"
	"github.com/teranos/dolly/host"
	"github.com/teranos/dolly/probe"
)

const (
	fps        = 60
	scrollStep = 120
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type tickMsg time.Time

type model struct {
	sim  *host.Sim
	ctrl *dolly.Controller

	// Kinetic scroll: a spring chases the target so the demo scrolls the
	// way a trackpad does instead of teleporting.
	spring       harmonica.Spring
	scrollPos    float64
	scrollVel    float64
	scrollTarget float64

	pointerX, pointerY float64

	recorder *probe.Recorder
	filmDir  string
	started  time.Time
	frames   int
}

func newModel(filmDir string) model {
	sim := buildDemoPage()
	ctrl := dolly.New(sim, sim, dolly.DefaultConfig())
	ctrl.Start()

	m := model{
		sim:      sim,
		ctrl:     ctrl,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 7.0, 0.9),
		filmDir:  filmDir,
		started:  time.Now(),
		pointerX: 640,
		pointerY: 360,
	}
	if filmDir != "" {
		m.recorder = probe.NewRecorder(sim,
			dolly.VarScrollProgress,
			dolly.VarGlowX,
			dolly.VarGlowY,
			dolly.VarGlowVelocity,
			dolly.VarParallaxNear,
			dolly.VarParallaxFar,
		)
	}
	return m
}

// buildDemoPage lays out the marketing page the controller expects: hero,
// three sections, footer, and the nav drawer.
func buildDemoPage() *host.Sim {
	sim := host.NewSim(1280, 720, 4200)
	sim.Add("header", host.Rect{Top: 0, Left: 0, Width: 1280, Height: 80})
	sim.Add("hero", host.Rect{Top: 80, Left: 0, Width: 1280, Height: 560})
	sim.Add("scroll-cue", host.Rect{Top: 660, Left: 600, Width: 80, Height: 40})
	sim.AddSection("intro", host.Rect{Top: 720, Left: 0, Width: 1280, Height: 900})
	sim.AddSection("product", host.Rect{Top: 1620, Left: 0, Width: 1280, Height: 1000})
	sim.AddSection("story", host.Rect{Top: 2620, Left: 0, Width: 1280, Height: 1100})
	sim.AddReveal("intro-card", host.Rect{Top: 900, Left: 160, Width: 400, Height: 300})
	sim.AddReveal("product-card", host.Rect{Top: 1800, Left: 720, Width: 400, Height: 300})
	sim.Add("footer", host.Rect{Top: 3720, Left: 0, Width: 1280, Height: 480})
	sim.Add("nav-toggle", host.Rect{Top: 16, Left: 1200, Width: 48, Height: 48})
	menu := sim.Add("nav-menu", host.Rect{Top: 0, Left: 880, Width: 400, Height: 720})
	sim.AddFocusable(menu, "nav-link-intro", host.Rect{Top: 120, Left: 920, Width: 320, Height: 48})
	sim.AddFocusable(menu, "nav-link-product", host.Rect{Top: 180, Left: 920, Width: 320, Height: 48})
	sim.AddFocusable(menu, "nav-link-story", host.Rect{Top: 240, Left: 920, Width: 320, Height: 48})
	return sim
}

func (m model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.scrollPos, m.scrollVel = m.spring.Update(m.scrollPos, m.scrollVel, m.scrollTarget)
		m.sim.SetScroll(m.scrollPos)
		m.sim.Step(1)
		m.frames++
		if m.recorder != nil {
			m.recorder.Sample()
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.scrollTarget = max(0, m.scrollTarget-scrollStep)
		case "down", "j":
			m.scrollTarget = min(4200-720, m.scrollTarget+scrollStep)
		case "g":
			m.scrollTarget = 0
		case "G":
			m.scrollTarget = 4200 - 720
		case "w":
			m.pointerY -= 40
			m.sim.MovePointer(m.pointerX, m.pointerY)
		case "s":
			m.pointerY += 40
			m.sim.MovePointer(m.pointerX, m.pointerY)
		case "a":
			m.pointerX -= 40
			m.sim.MovePointer(m.pointerX, m.pointerY)
		case "d":
			m.pointerX += 40
			m.sim.MovePointer(m.pointerX, m.pointerY)
		case "m":
			m.sim.Activate("nav-toggle")
		case "tab":
			m.sim.PressKey(host.KeyTab)
		case "shift+tab":
			m.sim.PressKey(host.KeyShiftTab)
		case "esc":
			m.sim.PressKey(host.KeyEscape)
		}
	}
	return m, nil
}

func (m model) View() string {
	left := fmt.Sprintf(
		"%s\n%s %s\n%s %.0f px\n%s %s\n%s %v\n%s %v",
		titleStyle.Render("page"),
		labelStyle.Render("active section:"), valueStyle.Render(orDash(m.ctrl.ActiveSection())),
		labelStyle.Render("scroll:"), m.scrollPos,
		labelStyle.Render("nav:"), valueStyle.Render(navState(m.ctrl.NavOpen())),
		labelStyle.Render("header compact:"), m.sim.PageMarker(dolly.MarkerHeaderCompact),
		labelStyle.Render("footer visible:"), m.sim.PageMarker(dolly.MarkerFooterVisible),
	)

	right := titleStyle.Render("render hints")
	for _, name := range []string{
		dolly.VarScrollProgress,
		dolly.VarParallaxNear,
		dolly.VarParallaxFar,
		dolly.VarGlowX,
		dolly.VarGlowY,
		dolly.VarGlowVelocity,
	} {
		v, ok := m.sim.PageVar(name)
		if !ok {
			v = "—"
		}
		right += fmt.Sprintf("\n%s %s", labelStyle.Render(name+":"), valueStyle.Render(v))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left),
		panelStyle.Render(right),
	)
	help := helpStyle.Render("j/k scroll · g/G ends · wasd pointer · m menu · esc close · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, body, help) + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func navState(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}

func main() {
	filmDir := flag.String("film", "", "directory to write the film strip and report into")
	flag.Parse()

	m := newModel(*filmDir)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Fatalf("dolly-demo: %v", err)
	}

	fm, ok := final.(model)
	if !ok || fm.filmDir == "" {
		return
	}
	if err := writeFilm(fm); err != nil {
		fmt.Fprintf(os.Stderr, "dolly-demo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote film strip and report to %s\n", fm.filmDir)
}

func writeFilm(m model) error {
	if err := os.MkdirAll(m.filmDir, 0o755); err != nil {
		return err
	}
	trace := m.recorder.Trace()
	strip := probe.NewFilmStrip(probe.DefaultFilmConfig())
	if err := strip.WritePNG(m.filmDir+"/session.png", trace); err != nil {
		return err
	}
	writer, err := probe.NewReportWriter(m.filmDir)
	if err != nil {
		return err
	}
	return writer.Write("session", probe.Report{
		Title:       "dolly-demo session",
		GeneratedAt: time.Now(),
		Duration:    time.Since(m.started),
		Trace:       trace,
	})
}
