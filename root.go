package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/fluid-bubble/internal/blob"
	"github.com/iburimskiy/fluid-bubble/internal/chime"
	"github.com/iburimskiy/fluid-bubble/internal/config"
	"github.com/iburimskiy/fluid-bubble/internal/game"
)

var (
	presetPath string
	clockwise  bool
	fixedStep  bool
	sound      bool
	showDialog bool
	width      int
	height     int
)

var rootCmd = &cobra.Command{
	Use:   "fluid-bubble",
	Short: "animated wobbling bubble",
	Long: `fluid-bubble draws a circle whose radius is perturbed by two travelling
sine waves, filled with a gradient and redrawn every frame.

Press D or the button to reverse the waves. Sending SIGUSR1 to the process
reverses them too.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&presetPath, "config", "c", "", "YAML preset overriding the built-in wave and gradient settings")
	rootCmd.Flags().BoolVar(&clockwise, "clockwise", false, "start with the waves travelling clockwise")
	rootCmd.Flags().BoolVar(&fixedStep, "fixed-step", false, "advance one fixed step per frame instead of by elapsed time")
	rootCmd.Flags().BoolVar(&sound, "sound", false, "play a tone when the direction changes")
	rootCmd.Flags().BoolVar(&showDialog, "dialog", false, "report fatal errors in a native dialog")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width (default from preset)")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height (default from preset)")
}

func run(cmd *cobra.Command, args []string) error {
	preset := config.Default()
	if presetPath != "" {
		p, err := config.LoadPreset(presetPath)
		if err != nil {
			return err
		}
		preset = p
		log.Printf("loaded preset %s", presetPath)
	}

	if cmd.Flags().Changed("clockwise") {
		preset.Direction = blob.CounterClockwise.String()
		if clockwise {
			preset.Direction = blob.Clockwise.String()
		}
	}
	if cmd.Flags().Changed("fixed-step") {
		preset.FixedStep = fixedStep
	}
	if width > 0 {
		preset.Window.Width = width
	}
	if height > 0 {
		preset.Window.Height = height
	}

	cfg, err := preset.WaveConfig()
	if err != nil {
		return err
	}
	animator, err := blob.NewAnimator(cfg, preset.InitialDirection())
	if err != nil {
		return err
	}
	log.Printf("radius %.0f, %d samples, frequencies %d/%d, amplitudes %.1f/%.1f, speed %.2f, %s",
		cfg.BaseRadius, cfg.Samples, cfg.PrimaryFrequency, cfg.SecondaryFrequency,
		cfg.PrimaryAmplitude, cfg.SecondaryAmplitude, cfg.Speed, animator.Direction())

	var player *chime.Player
	if sound {
		player, err = chime.New(config.ChimeSampleRate, config.ChimeVolume)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer player.Close()
		}
	}

	view := blob.NewView(animator,
		blob.WithFixedStep(preset.FixedStep),
		blob.WithDirectionListener(func(d blob.Direction) {
			log.Printf("direction: %s", d)
			if player != nil {
				player.Play(d)
			}
		}),
	)
	g := game.New(view, game.Options{
		BubbleSize: preset.Window.BubbleSize,
		Gradient:   preset.LinearGradient(),
	})
	defer g.Close()

	stopSignals := notifyToggle(view.RequestToggle)
	defer stopSignals()

	ebiten.SetWindowSize(preset.Window.Width, preset.Window.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Printf("stopped after %d frames", view.Frames())
	return nil
}
