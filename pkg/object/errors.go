package object

import "errors"

var (
	// ErrObjectNotFound means no file exists at the object's store path.
	ErrObjectNotFound = errors.New("object not found")

	// ErrCorruptObject covers decompression failures and any framing
	// violation in the encoded bytes.
	ErrCorruptObject = errors.New("corrupt object")

	// ErrMalformedHeader is returned for a "kind size" header that does not
	// parse. It matches ErrCorruptObject under errors.Is.
	ErrMalformedHeader error = &malformedHeaderError{}

	// ErrUnknownObjectKind means the header names a kind outside
	// blob/tree/commit.
	ErrUnknownObjectKind = errors.New("unknown object kind")

	// ErrTypeMismatch is returned by typed readers when the stored kind is
	// not the one requested.
	ErrTypeMismatch = errors.New("object type mismatch")

	// ErrInvalidHash rejects text that is not a 40-character hex digest.
	ErrInvalidHash = errors.New("invalid object hash")
)

type malformedHeaderError struct{}

func (*malformedHeaderError) Error() string { return "malformed object header" }

func (*malformedHeaderError) Is(target error) bool {
	return target == ErrCorruptObject
}
