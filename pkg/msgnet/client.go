package msgnet

import (
	"context"
	"net"
)

// Client is a framed-message connection to a Server.
type Client struct {
	conn net.Conn
}

// Dial connects to a server at addr.
func Dial(ctx context.Context, addr string) (*Client, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send writes one message.
func (c *Client) Send(m *Message) error {
	frame, err := m.Encode()
	if err != nil {
		return err
	}
	_, err = c.conn.Write(frame)
	return err
}

// Recv reads one message.
func (c *Client) Recv() (*Message, error) {
	return Decode(c.conn)
}

// Call sends a request and waits for the response.
func (c *Client) Call(m *Message) (*Message, error) {
	if err := c.Send(m); err != nil {
		return nil, err
	}
	return c.Recv()
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
