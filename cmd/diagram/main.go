// Command diagram renders demo table scenes to PNG without the server:
//
//	diagram -scene rack -out rack.png
//
// Scenes: rack (cue ball plus a full 9-ball rack), pockets (balls on every
// pocket diamond plus two rail-frozen balls), aiming (cue and object ball
// with ghost-ball overlays and angles to every pocket printed to stdout).
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/shotbook/backend/internal/diagram"
	"github.com/shotbook/backend/internal/game"
)

func main() {
	scene := flag.String("scene", "rack", "scene to render: rack | pockets | aiming")
	out := flag.String("out", "output.png", "output PNG path")
	flag.Parse()

	state := game.NewGameState(game.BrunswickGC49ft(), game.NineBallGame)

	switch *scene {
	case "rack":
		buildRackScene(state)
	case "pockets":
		buildPocketsScene(state)
	case "aiming":
		buildAimingScene(state)
	default:
		log.Fatalf("unknown scene %q", *scene)
	}

	pngBytes, err := diagram.NewRenderer().Render(state)
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}
	if err := diagram.WritePNGFile(pngBytes, *out); err != nil {
		log.Fatalf("write failed: %v", err)
	}
}

func buildRackScene(state *game.GameState) {
	spec := game.DefaultBallSpec()
	state.PlaceBall(game.CueBall, game.HeadSpot, spec)
	state.RackNineBall(spec)
}

func buildPocketsScene(state *game.GameState) {
	spec := game.DefaultBallSpec()
	for _, pk := range game.Pockets {
		state.PlaceBall(game.CueBall, pk.AimingCenter(), spec)
	}
	state.FreezeToRail(game.BottomRail, game.Diamond1, game.OneBall, spec)
	state.FreezeToRail(game.RightRail, game.Diamond6, game.SixBall, spec)
}

func buildAimingScene(state *game.GameState) {
	spec := game.DefaultBallSpec()
	state.PlaceBall(game.CueBall, game.CenterSpot, spec)
	state.PlaceBall(game.EightBall, game.Position{X: game.Diamond2, Y: game.Diamond6}, spec)

	eight, err := state.SelectBall(game.EightBall)
	if err != nil {
		log.Fatalf("select ball: %v", err)
	}

	for _, pk := range game.Pockets {
		fmt.Printf("Angle to %s pocket from the 8 ball: %s\n",
			pk, eight.Position.AngleToPocket(pk))
	}

	// Ghost-ball aim for cutting the 8 into the top-left pocket, with the
	// shot line drawn for both legs.
	toPocket := eight.Position.AngleToPocket(game.TopLeftPocket)
	ghost := eight.Position.TranslateGhostBall(toPocket.Flipped(), spec).Resolve(state.TableSpec)

	cue, err := state.SelectBall(game.CueBall)
	if err != nil {
		log.Fatalf("select ball: %v", err)
	}

	white := game.Color{R: 240, G: 240, B: 240, A: 255}
	state.AddLine(cue.Position, ghost, white)
	state.AddLine(eight.Position, game.TopLeftPocket.AimingCenter(), white)
}
