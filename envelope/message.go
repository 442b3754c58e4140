/*
NAME
  message.go

DESCRIPTION
  message.go defines the binaric message: a header object, raw content bytes
  and a footer string, and the on-disk document form of that triple.

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package envelope

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Message is the triple transmitted by a binaric WAV file: a header object,
// opaque content bytes and a footer string. The negotiation/checksum fields
// carried by the original prototype's header are not modeled — they never
// had wire-level meaning.
type Message struct {
	Header  Object `json:"header"`
	Content []byte `json:"content"`
	Footer  string `json:"footer"`
}

// CanonicalHeaderJSON returns the header encoded as canonical JSON: UTF-8,
// stable (sorted) field order, no insignificant whitespace. Go's map
// marshaling already sorts string keys, so this is just json.Marshal.
func (m Message) CanonicalHeaderJSON() ([]byte, error) {
	if m.Header == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m.Header)
	if err != nil {
		return nil, fmt.Errorf("envelope: marshaling header: %w", err)
	}
	return b, nil
}

// ParseDocument reads a message document: {"header": {...}, "content":
// "<base64>", "footer": "..."}. encoding/json base64-decodes the content
// field automatically because it targets a []byte.
func ParseDocument(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Message{}, fmt.Errorf("envelope: parsing message document: %w", err)
	}
	if m.Header == nil {
		m.Header = Object{}
	}
	// encoding/json silently replaces invalid UTF-8 with U+FFFD when it
	// decodes a string, so the footer is checked in its raw form.
	var raw struct {
		Footer json.RawMessage `json:"footer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Message{}, fmt.Errorf("envelope: parsing message document: %w", err)
	}
	if !utf8.Valid(raw.Footer) {
		return Message{}, fmt.Errorf("envelope: footer is not valid utf-8")
	}
	return m, nil
}

// Document renders the message as its on-disk document form: pretty-ish
// JSON with the header's canonical (sorted-key) ordering preserved and
// content base64-encoded.
func (m Message) Document() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("envelope: marshaling message document: %w", err)
	}
	return b, nil
}
