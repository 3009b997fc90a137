package msgnet

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"
)

func TestCommandRoundtrip(t *testing.T) {
	frame, err := Command("restart").Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(frame) != HeaderSize+4+len("restart") {
		t.Fatalf("unexpected frame length %d", len(frame))
	}
	got, err := Decode(bytes.NewReader(frame))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type() != TypeCommand || got.CommandName() != "restart" {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestDataRoundtrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff, 0x22}
	frame, err := Data(payload).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(bytes.NewReader(frame))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type() != TypeData || !bytes.Equal(got.Payload(), payload) {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	frame, _ := Command("x").Encode()
	binary.BigEndian.PutUint32(frame[0:4], 0xdeadbeef)
	if _, err := Decode(bytes.NewReader(frame)); !errors.Is(err, ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	frame, _ := Command("x").Encode()
	_, err := Decode(bytes.NewReader(frame[:7]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestDecodeTruncatedBody(t *testing.T) {
	frame, _ := Command("restart").Encode()
	_, err := Decode(bytes.NewReader(frame[:HeaderSize+2]))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestDecodeInvalidType(t *testing.T) {
	frame, _ := Data([]byte("d")).Encode()
	frame[8] = 9
	if _, err := Decode(bytes.NewReader(frame)); !errors.Is(err, ErrBadType) {
		t.Fatalf("expected ErrBadType, got %v", err)
	}
}

func TestDecodeOversizedBodyRejected(t *testing.T) {
	var header [HeaderSize]byte
	binary.BigEndian.PutUint32(header[0:4], Magic)
	binary.BigEndian.PutUint32(header[4:8], MaxBodySize+1)
	header[8] = byte(TypeData)
	if _, err := Decode(bytes.NewReader(header[:])); !errors.Is(err, ErrBodyTooLarge) {
		t.Fatalf("expected ErrBodyTooLarge, got %v", err)
	}
}

func TestDecodeCommandLengthMismatch(t *testing.T) {
	frame, _ := Command("restart").Encode()
	// claim a shorter name than the body carries
	binary.BigEndian.PutUint32(frame[HeaderSize:HeaderSize+4], 2)
	if _, err := Decode(bytes.NewReader(frame)); !errors.Is(err, ErrBadCommand) {
		t.Fatalf("expected ErrBadCommand, got %v", err)
	}
}

func TestEncodeInvalidMessage(t *testing.T) {
	if _, err := (&Message{}).Encode(); !errors.Is(err, ErrBadType) {
		t.Fatalf("expected ErrBadType, got %v", err)
	}
}
