// Package msgnet implements a small framed message protocol over TCP.
//
// Every frame starts with a 16-byte header:
//
//	magic     uint32  0x22334161 (big endian)
//	body size uint32  (big endian)
//	type      byte    1=command, 2=data
//	padding   7 bytes zero
//
// A command body is a big-endian uint32 name length followed by the UTF-8
// name. A data body is raw bytes.
package msgnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

const (
	// Magic marks the start of every frame.
	Magic uint32 = 0x22334161
	// HeaderSize is the fixed frame header length.
	HeaderSize = 16
	// MaxBodySize bounds frame bodies so a corrupt or hostile header
	// cannot trigger a huge allocation.
	MaxBodySize = 16 << 20
)

// Type identifies the frame payload kind.
type Type uint8

const (
	TypeInvalid Type = iota
	TypeCommand
	TypeData
)

var (
	ErrBadMagic     = errors.New("msgnet: bad magic")
	ErrBadType      = errors.New("msgnet: invalid message type")
	ErrBodyTooLarge = errors.New("msgnet: body exceeds size limit")
	ErrBadCommand   = errors.New("msgnet: malformed command body")
)

// Message is a decoded or to-be-encoded frame.
type Message struct {
	typ     Type
	command string
	data    []byte
}

// Command builds a command message.
func Command(name string) *Message {
	return &Message{typ: TypeCommand, command: name}
}

// Data builds a data message.
func Data(b []byte) *Message {
	return &Message{typ: TypeData, data: b}
}

// Type returns the payload kind.
func (m *Message) Type() Type { return m.typ }

// CommandName returns the command name for command messages.
func (m *Message) CommandName() string { return m.command }

// Payload returns the raw bytes for data messages.
func (m *Message) Payload() []byte { return m.data }

// BodySize returns the encoded body length.
func (m *Message) BodySize() int {
	switch m.typ {
	case TypeCommand:
		return 4 + len(m.command)
	case TypeData:
		return len(m.data)
	}
	return 0
}

func (m *Message) String() string {
	switch m.typ {
	case TypeCommand:
		return fmt.Sprintf("type: COMMAND | body size: %d | command name: %s", m.BodySize(), m.command)
	case TypeData:
		return fmt.Sprintf("type: DATA | body size: %d", m.BodySize())
	}
	return "[INVALID MESSAGE]"
}

// Encode serializes the message into a single frame.
func (m *Message) Encode() ([]byte, error) {
	if m.typ != TypeCommand && m.typ != TypeData {
		return nil, ErrBadType
	}
	bodySize := m.BodySize()
	if bodySize > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	buf := make([]byte, HeaderSize+bodySize)
	binary.BigEndian.PutUint32(buf[0:4], Magic)
	binary.BigEndian.PutUint32(buf[4:8], uint32(bodySize))
	buf[8] = byte(m.typ)
	switch m.typ {
	case TypeCommand:
		binary.BigEndian.PutUint32(buf[HeaderSize:HeaderSize+4], uint32(len(m.command)))
		copy(buf[HeaderSize+4:], m.command)
	case TypeData:
		copy(buf[HeaderSize:], m.data)
	}
	return buf, nil
}

// Decode reads one frame from r.
func Decode(r io.Reader) (*Message, error) {
	header := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if binary.BigEndian.Uint32(header[0:4]) != Magic {
		return nil, ErrBadMagic
	}
	bodySize := binary.BigEndian.Uint32(header[4:8])
	if bodySize > MaxBodySize {
		return nil, ErrBodyTooLarge
	}
	typ := Type(header[8])
	if typ != TypeCommand && typ != TypeData {
		return nil, ErrBadType
	}

	body := make([]byte, bodySize)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}

	m := &Message{typ: typ}
	switch typ {
	case TypeCommand:
		if len(body) < 4 {
			return nil, ErrBadCommand
		}
		nameLen := binary.BigEndian.Uint32(body[0:4])
		name := body[4:]
		if int(nameLen) != len(name) {
			return nil, ErrBadCommand
		}
		if !utf8.Valid(name) {
			return nil, ErrBadCommand
		}
		m.command = string(name)
	case TypeData:
		m.data = body
	}
	return m, nil
}
