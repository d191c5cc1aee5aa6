package main

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tourguide"
	"tourguide/geom"
)

const sidebarWidth = 22

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)
	footerStyle = lipgloss.NewStyle().
			Faint(true).
			Padding(0, 1)
)

var projects = []string{
	"dotfiles",
	"homelab",
	"tourguide",
	"website",
	"zettelkasten",
}

// model is the demo dashboard. All tour interaction goes through the
// overlay; the model only builds the document and registers its zones.
type model struct {
	overlay *tourguide.Overlay
	tour    *tourguide.Tour
	cfg     demoConfig
	store   tourguide.Store
	resume  bool

	width, height int

	startKey key.Binding
	saveKey  key.Binding
	quitKey  key.Binding
}

func newModel(overlay *tourguide.Overlay, cfg demoConfig, store tourguide.Store, resume bool) *model {
	return &model{
		overlay: overlay,
		cfg:     cfg,
		store:   store,
		resume:  resume,
		startKey: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "start tour"),
		),
		saveKey: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save tour"),
		),
		quitKey: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.buildDoc()
		return m, m.overlay.Update(msg)

	case tea.KeyMsg:
		tourActive := m.tour != nil && m.tour.State() == tourguide.Started
		switch {
		case key.Matches(msg, m.quitKey) && !tourActive:
			return m, tea.Quit
		case key.Matches(msg, m.startKey) && !tourActive:
			m.startTour()
			return m, nil
		case key.Matches(msg, m.saveKey):
			if m.tour != nil {
				if err := m.tour.Save(); err != nil {
					log.Printf("save failed: %v", err)
				}
			}
			return m, nil
		}
	}
	return m, m.overlay.Update(msg)
}

func (m *model) View() string {
	return m.overlay.View(m.buildDoc())
}

// startTour creates (or resumes) the tour and starts it. A finished tour
// is recreated from the config so it can run again.
func (m *model) startTour() {
	var t *tourguide.Tour
	if m.resume && m.store != nil {
		loaded, err := tourguide.Load(m.cfg.name, m.overlay, m.store)
		if err != nil {
			log.Printf("resume failed: %v", err)
		} else {
			t = loaded
		}
		m.resume = false
	}
	if t == nil {
		t = tourguide.New(m.cfg.name, m.cfg.steps, m.overlay)
		t.SetOptions(m.cfg.opts)
		t.SetTextVariables(m.cfg.vars)
		if m.store != nil {
			t.SetStore(m.store)
		}
	}
	m.tour = t
	m.overlay.Attach(t)
	t.Start()
}

// buildDoc renders the dashboard document and keeps the zone registry in
// sync with it.
func (m *model) buildDoc() string {
	w := m.width
	if w <= 0 {
		w = 80
	}

	header := headerStyle.Width(w).Render("tourdemo — guided tour sample")
	side := sidebarStyle.Render(strings.Join(projects, "\n"))
	body := contentStyle.Width(maxInt(w-sidebarWidth, 20)).Render(contentText())
	mainArea := lipgloss.JoinHorizontal(lipgloss.Top, side, body)
	footer := footerStyle.Width(w).Render("t start tour · ctrl+s save · q quit")

	hh := lipgloss.Height(header)
	mh := lipgloss.Height(mainArea)
	sw := lipgloss.Width(side)
	m.overlay.SetZone("header", geom.NewRect(0, 0, w, hh))
	m.overlay.SetZone("sidebar", geom.NewRect(0, hh, sw, mh))
	m.overlay.SetZone("content", geom.NewRect(sw, hh, maxInt(w-sidebarWidth, 20), mh))
	m.overlay.SetZone("footer", geom.NewRect(0, hh+mh, w, lipgloss.Height(footer)))

	return lipgloss.JoinVertical(lipgloss.Left, header, mainArea, footer)
}

func contentText() string {
	var b strings.Builder
	b.WriteString("README\n\n")
	for i := 0; i < 28; i++ {
		b.WriteString("Scroll through this area with the arrow keys when no tour is running.\n")
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
