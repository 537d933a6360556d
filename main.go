package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"snake-duel/game"
	"snake-duel/ui"
	"snake-duel/ui/term"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/golang/glog"
)

func main() {
	speed := flag.Int("speed", 100, "Host tick interval in milliseconds (lower = faster)")
	divisor := flag.Int("divisor", game.DefaultConfig().UpdateFrequency, "Host ticks per simulation step")
	players := flag.Int("players", 0, "Start straight into a 1- or 2-player round (0 shows the title)")
	tty := flag.Bool("tty", false, "Play in the terminal instead of a window")
	flag.Parse()
	defer glog.Flush()

	cfg := game.DefaultConfig()
	cfg.UpdateFrequency = *divisor

	g, err := game.New(cfg)
	if err != nil {
		glog.Exitf("building game: %v", err)
	}
	if *players != 0 {
		if err := g.Start(*players); err != nil {
			glog.Exitf("starting game: %v", err)
		}
	}

	updateInterval := time.Duration(*speed) * time.Millisecond
	if *tty {
		runTerminal(g, updateInterval)
		return
	}
	runWindow(g, updateInterval)
}

func runTerminal(g *game.Game, interval time.Duration) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t, err := term.NewTerminal()
	if err != nil {
		glog.Exitf("terminal: %v", err)
	}
	defer t.Close()

	if err := t.Run(ctx, g, interval); err != nil && err != context.Canceled {
		glog.Errorf("terminal loop: %v", err)
	}
}

func runWindow(g *game.Game, interval time.Duration) {
	rl.InitWindow(1280, 480, "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		for _, ev := range ui.PollKeys() {
			if ev.Rune == 'q' {
				glog.V(1).Info("quit requested from window")
				return
			}
			g.Key(ev)
		}

		// Host timer: one Tick per interval, the game decides when to step
		if time.Since(lastUpdate) >= interval {
			g.Tick()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}
}
