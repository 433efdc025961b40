package game

import (
	"encoding/json"
	"fmt"
)

// Wire messages are JSON envelopes: {"type": "...", "data": {...}}.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type PlayerState struct {
	Name     string `json:"name"`
	Money    int    `json:"money"`
	IsAI     bool   `json:"ai"`
	Position int    `json:"position"`
}

// EventWelcome assigns this client its slot when joining a match.
type EventWelcome struct {
	Slot    int           `json:"slot"`
	Players []PlayerState `json:"players"`
}

// EventState is the authoritative turn state, sent after every action.
type EventState struct {
	Players              []PlayerState `json:"players"`
	CurrentPlayer        int           `json:"current"`
	DiceResult           int           `json:"dice"`
	EffectDiceResult     int           `json:"effect_dice"`
	Message              string        `json:"message"`
	WaitingForEffectDice bool          `json:"waiting"`
	GameOver             bool          `json:"game_over"`
	Winner               int           `json:"winner"`
}

// EventMoved animates a token from one cell to another.
type EventMoved struct {
	Slot int `json:"slot"`
	From int `json:"from"`
	To   int `json:"to"`
}

type EventMessage struct {
	Message string `json:"message"`
}

// EventDisconnect is synthesized locally when the connection drops.
type EventDisconnect struct {
	Reason string `json:"reason"`
}

type CommandJoin struct {
	Nickname string `json:"nickname"`
}

type CommandRoll struct{}

type CommandRollEffect struct{}

type CommandRestart struct{}

func DecodeEvent(b []byte) (interface{}, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, err
	}

	var ev interface{}
	switch env.Type {
	case "welcome":
		ev = &EventWelcome{}
	case "state":
		ev = &EventState{}
	case "moved":
		ev = &EventMoved{}
	case "message":
		ev = &EventMessage{}
	default:
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	if len(env.Data) != 0 {
		if err := json.Unmarshal(env.Data, ev); err != nil {
			return nil, err
		}
	}
	return ev, nil
}

func encodeCommand(cmd interface{}) []byte {
	var t string
	switch cmd.(type) {
	case *CommandJoin:
		t = "join"
	case *CommandRoll:
		t = "roll"
	case *CommandRollEffect:
		t = "effectroll"
	case *CommandRestart:
		t = "restart"
	default:
		panic(fmt.Sprintf("unknown command type %T", cmd))
	}

	data, err := json.Marshal(cmd)
	if err != nil {
		panic(err)
	}
	b, err := json.Marshal(&envelope{Type: t, Data: data})
	if err != nil {
		panic(err)
	}
	return b
}
