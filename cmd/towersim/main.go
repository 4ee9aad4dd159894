// cmd/towersim/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/snapshot"
	"go-tower-sim/internal/state"
	"go-tower-sim/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	envFile := flag.String("env", ".env", "settings file with TOWERSIM_* variables")
	layoutPath := flag.String("layout", "", "map layout file (default: built-in map)")
	loadPath := flag.String("load", "", "snapshot to resume from")
	savePath := flag.String("save", "towersim.sav", "where F5 writes snapshots")
	menu := flag.Bool("menu", false, "start on the title screen")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	settings, err := config.Load(*envFile)
	if err != nil {
		log.Fatal(err)
	}

	var game *app.Game
	if *loadPath != "" {
		st, err := snapshot.LoadFile(*loadPath)
		if err != nil {
			log.Fatal(err)
		}
		if game, err = app.Restore(settings, st); err != nil {
			log.Fatal(err)
		}
	} else {
		layout := config.DefaultLayout
		if *layoutPath != "" {
			if layout, err = config.LoadLayout(*layoutPath); err != nil {
				log.Fatal(err)
			}
		}
		if game, err = app.NewGame(settings, layout); err != nil {
			log.Fatal(err)
		}
	}
	game.SetLogger(log.New(log.Writer(), "[towersim "+game.SessionID.String()[:8]+"] ", log.LstdFlags))

	face := basicfont.Face7x13
	renderer := render.NewGridRenderer(config.HUDHeight,
		&render.MapColors{
			BackgroundColor: config.BackgroundColor,
			BuildableColor:  config.BuildableColor,
			ObstacleColor:   config.ObstacleColor,
			RouteColor:      config.RouteColor,
			SpawnColor:      config.SpawnColor,
			GoalColor:       config.GoalColor,
			DecorationColor: config.DecorationColor,
			RouteLineColor:  render.DarkenColor(config.RouteColor),
			StrokeWidth:     config.RouteStrokeWidth,
		},
		&render.EntityColors{
			TowerStroke:      config.TowerStrokeColor,
			Range:            config.RangeColor,
			Projectile:       config.ProjectileColor,
			HealthBar:        config.HealthBarColor,
			HealthBack:       config.HealthBackColor,
			TowerStrokeSize:  config.TowerStrokeWidth,
			ProjectileRadius: config.ProjectileRadius,
			HealthBarHeight:  config.EnemyHealthBarHeight,
		},
		face)

	sm := state.NewStateMachine()
	play := state.NewPlayState(sm, game, renderer, face, *savePath)
	if *menu {
		sm.SetState(state.NewMenuState(sm, play))
	} else {
		sm.SetState(play)
	}

	width, height := state.ScreenSize(game.Grid())
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Tower Sim")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
