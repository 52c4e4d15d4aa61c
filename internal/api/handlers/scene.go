package handlers

import (
	"fmt"

	"github.com/shotbook/backend/internal/game"
)

// SceneRequest is the wire description of a table scene. Coordinates travel
// as decimal strings so they parse into exact diamond units.
type SceneRequest struct {
	Table           string       `json:"table"`
	GameType        string       `json:"game_type"`
	CueballModifier string       `json:"cueball_modifier"`
	Rack            bool         `json:"rack"`
	Balls           []SceneBall  `json:"balls"`
	Frozen          []FrozenBall `json:"frozen"`
	Lines           []SceneLine  `json:"lines"`
}

type SceneBall struct {
	Type string `json:"type"`
	X    string `json:"x"`
	Y    string `json:"y"`
}

type FrozenBall struct {
	Rail       string `json:"rail"`
	Coordinate string `json:"coordinate"`
	Type       string `json:"type"`
}

type ScenePoint struct {
	X string `json:"x"`
	Y string `json:"y"`
}

type SceneColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

type SceneLine struct {
	From  ScenePoint `json:"from"`
	To    ScenePoint `json:"to"`
	Color SceneColor `json:"color"`
}

// BuildGameState validates the request and assembles the game state it
// describes. Any malformed literal or unknown name aborts with the core's
// typed error; nothing is defaulted silently.
func (req *SceneRequest) BuildGameState() (*game.GameState, error) {
	table, err := game.TablePreset(req.Table)
	if err != nil {
		return nil, err
	}

	gameType := game.NineBallGame
	if req.GameType != "" {
		if gameType, err = game.ParseGameType(req.GameType); err != nil {
			return nil, err
		}
	}

	state := game.NewGameState(table, gameType)
	if req.CueballModifier != "" {
		if state.CueballModifier, err = game.ParseCueballModifier(req.CueballModifier); err != nil {
			return nil, err
		}
	}

	spec := game.DefaultBallSpec()

	if req.Rack {
		state.RackNineBall(spec)
	}

	for i, b := range req.Balls {
		pos, err := parsePoint(b.X, b.Y)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		ty, err := game.ParseBallType(b.Type)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		state.PlaceBall(ty, pos, spec)
	}

	for i, f := range req.Frozen {
		rail, err := game.ParseRail(f.Rail)
		if err != nil {
			return nil, fmt.Errorf("frozen ball %d: %w", i, err)
		}
		coord, err := game.ParseDiamond(f.Coordinate)
		if err != nil {
			return nil, fmt.Errorf("frozen ball %d: %w", i, err)
		}
		ty, err := game.ParseBallType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("frozen ball %d: %w", i, err)
		}
		state.FreezeToRail(rail, coord, ty, spec)
	}

	for i, l := range req.Lines {
		from, err := parsePoint(l.From.X, l.From.Y)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		to, err := parsePoint(l.To.X, l.To.Y)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		state.AddLine(from, to, game.Color{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: l.Color.A})
	}

	return state, nil
}

func parsePoint(x, y string) (game.Position, error) {
	dx, err := game.ParseDiamond(x)
	if err != nil {
		return game.Position{}, err
	}
	dy, err := game.ParseDiamond(y)
	if err != nil {
		return game.Position{}, err
	}
	return game.Position{X: dx, Y: dy}, nil
}
