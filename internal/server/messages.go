package server

import (
	"encoding/json"

	"github.com/you/connectfour/internal/engine"
	"github.com/you/connectfour/internal/game"
)

// WebSocket message payloads

type WSMessage struct {
	Type string `json:"type"` // state|move|regame|error|end
	Data any    `json:"data"`
}

// inbound is a client message whose data is decoded once the type is known.
type inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type Move struct {
	Col int `json:"col"`
}

type Regame struct {
	Mode     string `json:"mode"` // bot|matchmaking
	Level    string `json:"level"`
	BotFirst bool   `json:"botFirst"`
}

type StatePayload struct {
	GameID   string          `json:"gameId"`
	Board    [][]engine.Cell `json:"board"`
	Turn     engine.Cell     `json:"turn"`
	You      engine.Cell     `json:"you"`
	Opponent string          `json:"opponent"`
	Level    string          `json:"level"`
	Mode     string          `json:"mode"`
	Moves    int             `json:"moves"`
}

type EndPayload struct {
	Reason string `json:"reason"` // win|draw|forfeit
	Winner string `json:"winner"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// stateFor copies g's board for username. Call with the match locked.
func stateFor(g *game.Game, username string) StatePayload {
	you := g.SideOf(username)
	return StatePayload{
		GameID:   g.ID.String(),
		Board:    g.Board.Clone().Cells,
		Turn:     g.Turn,
		You:      you,
		Opponent: g.NameOf(you.Opponent()),
		Level:    g.Level.String(),
		Mode:     g.Mode().String(),
		Moves:    g.Moves,
	}
}
