package envelope

import (
	"testing"
)

func TestParseDocumentRoundTrip(t *testing.T) {
	in := []byte(`{"header":{"file_name":"a.txt","size":3},"content":"aGk=","footer":"end"}`)
	m, err := ParseDocument(in)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if string(m.Content) != "hi" {
		t.Errorf("Content = %q, want %q", m.Content, "hi")
	}
	if m.Footer != "end" {
		t.Errorf("Footer = %q, want %q", m.Footer, "end")
	}
	if m.Header["file_name"] != String("a.txt") {
		t.Errorf("Header[file_name] = %v, want String(a.txt)", m.Header["file_name"])
	}

	doc, err := m.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	m2, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("ParseDocument(round trip) error = %v", err)
	}
	if string(m2.Content) != string(m.Content) || m2.Footer != m.Footer {
		t.Errorf("round trip mismatch: got %+v, want %+v", m2, m)
	}
}

func TestCanonicalHeaderJSONStableOrder(t *testing.T) {
	m := Message{Header: Object{"b": Number(2), "a": Number(1)}}
	b, err := m.CanonicalHeaderJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"a":1,"b":2}` {
		t.Errorf("CanonicalHeaderJSON() = %s", b)
	}
}

func TestCanonicalHeaderJSONEmpty(t *testing.T) {
	m := Message{}
	b, err := m.CanonicalHeaderJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "{}" {
		t.Errorf("CanonicalHeaderJSON() = %s, want {}", b)
	}
}

func TestParseDocumentInvalidFooterUTF8(t *testing.T) {
	// \xff is not valid utf-8 as a lone byte in a go string, but json can't
	// encode an invalid-utf8 string literal directly; construct it via bytes.
	bad := append([]byte(`{"header":{},"content":"","footer":"`), 0xff, '"', '}')
	if _, err := ParseDocument(bad); err == nil {
		t.Error("expected error for invalid footer encoding")
	}
}
