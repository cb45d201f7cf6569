package object

import "fmt"

// Kind identifies the type of a stored object. The set is closed: every
// switch over Kind in this package is exhaustive.
type Kind uint8

const (
	KindBlob Kind = iota + 1
	KindTree
	KindCommit
)

// String returns the header name of the kind ("blob", "tree", "commit").
func (k Kind) String() string {
	switch k {
	case KindBlob:
		return "blob"
	case KindTree:
		return "tree"
	case KindCommit:
		return "commit"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a header name back to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "blob":
		return KindBlob, nil
	case "tree":
		return KindTree, nil
	case "commit":
		return KindCommit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjectKind, name)
	}
}

// Object is a typed, sized payload. Size is the length declared in the
// encoded header; for objects built in memory it equals len(Content).
type Object struct {
	Kind    Kind
	Size    int
	Content []byte
}

// NewBlob wraps raw file bytes as a blob object.
func NewBlob(data []byte) *Object {
	return &Object{Kind: KindBlob, Size: len(data), Content: data}
}

// NewTree encodes entries, in the order given, as a tree object.
func NewTree(entries []TreeEntry) (*Object, error) {
	content, err := EncodeTree(entries)
	if err != nil {
		return nil, err
	}
	return &Object{Kind: KindTree, Size: len(content), Content: content}, nil
}

// TreeEntry is one record of a tree payload.
type TreeEntry struct {
	Mode string // octal mode text exactly as captured from the file system
	Name string
	Hash Hash
}
