package game

import (
	"encoding/json"
	"testing"
)

func TestDecodeEvent(t *testing.T) {
	b := []byte(`{"type":"welcome","data":{"slot":1,"players":[{"name":"Ann","money":100,"position":0}]}}`)
	ev, err := DecodeEvent(b)
	if err != nil {
		t.Fatal(err)
	}
	welcome, ok := ev.(*EventWelcome)
	if !ok {
		t.Fatalf("decoded %T, expected *EventWelcome", ev)
	}
	if welcome.Slot != 1 || len(welcome.Players) != 1 || welcome.Players[0].Name != "Ann" {
		t.Fatalf("welcome fields not decoded: %+v", welcome)
	}

	b = []byte(`{"type":"moved","data":{"slot":0,"from":3,"to":7}}`)
	ev, err = DecodeEvent(b)
	if err != nil {
		t.Fatal(err)
	}
	moved, ok := ev.(*EventMoved)
	if !ok || moved.From != 3 || moved.To != 7 {
		t.Fatalf("moved event not decoded: %#v", ev)
	}

	if _, err = DecodeEvent([]byte(`{"type":"teleport"}`)); err == nil {
		t.Fatal("unknown event types must fail to decode")
	}
}

func TestEncodeCommand(t *testing.T) {
	var env envelope
	if err := json.Unmarshal(encodeCommand(&CommandJoin{Nickname: "Ann"}), &env); err != nil {
		t.Fatal(err)
	}
	if env.Type != "join" {
		t.Fatalf("type = %q, expected join", env.Type)
	}
	var join CommandJoin
	if err := json.Unmarshal(env.Data, &join); err != nil {
		t.Fatal(err)
	}
	if join.Nickname != "Ann" {
		t.Fatalf("nickname = %q", join.Nickname)
	}

	if err := json.Unmarshal(encodeCommand(&CommandRoll{}), &env); err != nil {
		t.Fatal(err)
	}
	if env.Type != "roll" {
		t.Fatalf("type = %q, expected roll", env.Type)
	}
}
