package game

import (
	"context"
	"log"

	"github.com/coder/websocket"
)

// Client connects to a game server and relays decoded events to the game
// loop. Writes are queued on Out; reads land on Events.
type Client struct {
	Address  string
	Nickname string
	Events   chan interface{}
	Out      chan []byte
	conn     *websocket.Conn
}

func newClient(address string, nickname string) *Client {
	const bufferSize = 10
	return &Client{
		Address:  address,
		Nickname: nickname,
		Events:   make(chan interface{}, bufferSize),
		Out:      make(chan []byte, bufferSize),
	}
}

func (c *Client) Connect() {
	if c.conn != nil {
		return // TODO reconnect
	}

	conn, _, err := websocket.Dial(context.Background(), c.Address, dialOptions)
	if err != nil {
		c.Events <- &EventDisconnect{Reason: err.Error()}
		return
	}
	c.conn = conn

	c.Out <- encodeCommand(&CommandJoin{Nickname: c.Nickname})

	go c.handleWrite()
	c.handleRead()
}

func (c *Client) handleWrite() {
	for buf := range c.Out {
		err := c.conn.Write(context.Background(), websocket.MessageText, buf)
		if err != nil {
			log.Printf("write: %s", err)
			return
		}

		if Debug > 0 {
			log.Printf("-> %s", buf)
		}
	}
}

func (c *Client) handleRead() {
	for {
		_, b, err := c.conn.Read(context.Background())
		if err != nil {
			c.Events <- &EventDisconnect{Reason: err.Error()}
			return
		}

		ev, err := DecodeEvent(b)
		if err != nil {
			log.Printf("message: %s", b)
			log.Printf("decode: %s", err)
			continue
		}
		c.Events <- ev

		if Debug > 0 {
			log.Printf("<- %s", b)
		}
	}
}

func (c *Client) Connected() bool {
	return c.conn != nil
}
