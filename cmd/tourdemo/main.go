package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tourguide"
	"tourguide/internal/session"
	"tourguide/internal/tourfile"
)

var (
	flagTourFile    string
	flagLanguage    string
	flagNoSpotlight bool
	flagResume      bool
)

var rootCmd = &cobra.Command{
	Use:   "tourdemo",
	Short: "Demo dashboard for the tourguide overlay",
	Long: `Tourdemo renders a small dashboard and walks through it with a guided
tour: popups anchored to parts of the screen, a spotlight mask around the
current target, and a session store that remembers where you left off.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagTourFile, "tour", "t", "", "load tour steps from a TOML or YAML file")
	rootCmd.Flags().StringVarP(&flagLanguage, "lang", "l", "", "button-label language (en or fr)")
	rootCmd.Flags().BoolVar(&flagNoSpotlight, "no-spotlight", false, "disable the spotlight mask")
	rootCmd.Flags().BoolVar(&flagResume, "resume", false, "resume the saved tour session")
}

var defaultSteps = []tourguide.Step{
	{Target: "header", Text: "Welcome PLACEHOLDER-user. This bar shows where you are."},
	{Target: "sidebar", Text: "Your projects live here. Pick one to open it."},
	{Target: "content", Text: "The selected project renders in this area."},
	{Target: "footer", Text: "Key hints stay at the bottom of the screen."},
	{Text: "That is the whole dashboard. Enjoy!"},
}

func run() error {
	// Log to a file so messages don't corrupt the TUI
	logFile, err := os.OpenFile("tourdemo.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	var store tourguide.Store
	if gs, err := session.Open("tourdemo"); err != nil {
		log.Printf("session storage unavailable: %v", err)
	} else {
		store = gs
	}

	overlay := tourguide.NewOverlay()
	m := newModel(overlay, cfg, store, flagResume)

	p := tea.NewProgram(m, tea.WithAltScreen())
	overlay.SetProgram(p)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

// demoConfig is everything needed to (re)create the demo tour.
type demoConfig struct {
	name  string
	steps []tourguide.Step
	opts  tourguide.Options
	vars  map[string]string
}

func buildConfig() (demoConfig, error) {
	user := os.Getenv("USER")
	if user == "" {
		user = "friend"
	}
	cfg := demoConfig{
		name:  "demo",
		steps: defaultSteps,
		opts:  tourguide.DefaultOptions(),
		vars:  map[string]string{"user": user},
	}

	if flagTourFile != "" {
		f, err := tourfile.Load(flagTourFile)
		if err != nil {
			return demoConfig{}, err
		}
		cfg.name = f.Name
		cfg.steps = make([]tourguide.Step, 0, len(f.Steps))
		for _, s := range f.Steps {
			cfg.steps = append(cfg.steps, tourguide.Step{
				Target: s.Target,
				Text:   s.Text,
				Image:  s.Image,
			})
		}
		applyOptions(&cfg.opts, f.Options)
		for k, v := range f.Vars {
			cfg.vars[k] = v
		}
	}

	if flagLanguage != "" {
		cfg.opts.Language = flagLanguage
	}
	if flagNoSpotlight {
		cfg.opts.UseSpotlight = false
	}
	return cfg, nil
}

func applyOptions(opts *tourguide.Options, def *tourfile.OptionsDef) {
	if def == nil {
		return
	}
	if def.DisableScroll != nil {
		opts.DisableScroll = *def.DisableScroll
	}
	if def.UseSpotlight != nil {
		opts.UseSpotlight = *def.UseSpotlight
	}
	if def.ScrollMargin != nil {
		opts.ScrollMargin = *def.ScrollMargin
	}
	if def.SpotlightPadding != nil {
		opts.SpotlightPadding = *def.SpotlightPadding
	}
	if def.Language != "" {
		opts.Language = def.Language
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
