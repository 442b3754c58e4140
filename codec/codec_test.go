package codec

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/binaric/envelope"
)

// roundTrip encodes msg against testPlan(), decodes the result and returns
// the decoded message and warnings.
func roundTrip(t *testing.T, msg envelope.Message) (envelope.Message, DecodeWarning) {
	t.Helper()
	plan := testPlan()
	path := filepath.Join(t.TempDir(), "tx.wav")

	if err := Encode(path, msg, plan, EncodeOptions{}); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, warn, err := Decode(path, plan, DecodeOptions{})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return got, warn
}

func TestRoundTripCleanChannel(t *testing.T) {
	msg := envelope.Message{
		Header:  envelope.Object{"file_name": envelope.String("a")},
		Content: []byte("Hi"),
		Footer:  "end",
	}
	got, warn := roundTrip(t, msg)
	if warn.Any() {
		t.Errorf("unexpected warnings: %+v", warn)
	}
	if diff := cmp.Diff(msg.Header, got.Header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if !bytes.Equal(got.Content, msg.Content) {
		t.Errorf("Content = %q, want %q", got.Content, msg.Content)
	}
	if got.Footer != msg.Footer {
		t.Errorf("Footer = %q, want %q", got.Footer, msg.Footer)
	}
}

func TestRoundTripEmptyMessage(t *testing.T) {
	msg := envelope.Message{Header: envelope.Object{}}
	got, warn := roundTrip(t, msg)
	if warn.NoEdges {
		t.Error("expected clock edges even for an empty message")
	}
	if len(got.Header) != 0 {
		t.Errorf("Header = %+v, want empty", got.Header)
	}
	if len(got.Content) != 0 {
		t.Errorf("Content = %q, want empty", got.Content)
	}
	if got.Footer != "" {
		t.Errorf("Footer = %q, want empty", got.Footer)
	}
}

func TestRoundTripAllByteValues(t *testing.T) {
	content := make([]byte, 256)
	for i := range content {
		content[i] = byte(i)
	}
	msg := envelope.Message{
		Header:  envelope.Object{"k": envelope.Number(1)},
		Content: content,
		Footer:  "z",
	}
	got, _ := roundTrip(t, msg)
	if !bytes.Equal(got.Content, content) {
		t.Error("256-byte content did not round trip exactly")
	}
}

func TestEncodeRejectsInvalidPlan(t *testing.T) {
	plan := testPlan()
	plan.Header = nil // violates §3: header must have at least one tone.
	msg := envelope.Message{Header: envelope.Object{}}
	err := Encode(filepath.Join(t.TempDir(), "tx.wav"), msg, plan, EncodeOptions{})
	if err == nil {
		t.Fatal("expected an error encoding against an invalid plan")
	}
}
