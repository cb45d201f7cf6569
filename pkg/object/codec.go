package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Encode returns the canonical byte form of an object:
//
//	<kind> <size>\0<content>
//
// The size written is len(Content), not the Size field.
func Encode(o *Object) []byte {
	header := o.Kind.String() + " " + strconv.Itoa(len(o.Content))
	out := make([]byte, 0, len(header)+1+len(o.Content))
	out = append(out, header...)
	out = append(out, 0)
	out = append(out, o.Content...)
	return out
}

// Decode parses the canonical byte form produced by Encode.
//
// The declared size is parsed and kept in Object.Size but is not checked
// against the content length.
func Decode(raw []byte) (*Object, error) {
	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return nil, fmt.Errorf("decode: %w: missing header terminator", ErrCorruptObject)
	}
	header := string(raw[:nul])

	kindName, sizeText, ok := strings.Cut(header, " ")
	if !ok {
		return nil, fmt.Errorf("decode: %w %q", ErrMalformedHeader, header)
	}
	kind, err := ParseKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	size, err := strconv.ParseUint(sizeText, 10, 63)
	if err != nil {
		return nil, fmt.Errorf("decode: %w: size %q", ErrMalformedHeader, sizeText)
	}

	return &Object{
		Kind:    kind,
		Size:    int(size),
		Content: raw[nul+1:],
	}, nil
}

// EncodeTree concatenates tree records in the order given:
//
//	<mode> <name>\0<20 raw digest bytes>
//
// Callers sort entries by name first; EncodeTree does not reorder.
func EncodeTree(entries []TreeEntry) ([]byte, error) {
	var buf bytes.Buffer
	for _, e := range entries {
		raw, err := e.Hash.Bytes()
		if err != nil {
			return nil, fmt.Errorf("encode tree entry %q: %w", e.Name, err)
		}
		buf.WriteString(e.Mode)
		buf.WriteByte(' ')
		buf.WriteString(e.Name)
		buf.WriteByte(0)
		buf.Write(raw)
	}
	return buf.Bytes(), nil
}

// DecodeTree parses a tree payload into its entries, in stored order.
// Every record must be followed by a full digest; leftover bytes that do
// not form a record are rejected.
func DecodeTree(content []byte) ([]TreeEntry, error) {
	var entries []TreeEntry
	rest := content
	for len(rest) > 0 {
		nul := bytes.IndexByte(rest, 0)
		if nul < 0 {
			return nil, fmt.Errorf("decode tree: %w: %d trailing bytes without record terminator", ErrCorruptObject, len(rest))
		}
		header := string(rest[:nul])
		mode, name, ok := strings.Cut(header, " ")
		if !ok {
			return nil, fmt.Errorf("decode tree: %w: record header %q has no mode separator", ErrCorruptObject, header)
		}
		rest = rest[nul+1:]

		if len(rest) < HashSize {
			return nil, fmt.Errorf("decode tree: %w: entry %q has %d digest bytes, want %d", ErrCorruptObject, name, len(rest), HashSize)
		}
		h, err := HashFromBytes(rest[:HashSize])
		if err != nil {
			return nil, fmt.Errorf("decode tree: %w", err)
		}
		rest = rest[HashSize:]

		entries = append(entries, TreeEntry{Mode: mode, Name: name, Hash: h})
	}
	return entries, nil
}
