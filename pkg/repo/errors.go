package repo

import "errors"

var (
	// ErrRepositoryNotFound means no metadata directory was found walking
	// up to the filesystem root.
	ErrRepositoryNotFound = errors.New("not a repository (or any of the parent directories)")

	// ErrRepositoryExists is returned by Init when the metadata directory is
	// already present.
	ErrRepositoryExists = errors.New("repository already exists")

	// ErrInvalidFilename rejects names that are not valid UTF-8.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrUnsupportedContent rejects file content that is not valid UTF-8.
	ErrUnsupportedContent = errors.New("unsupported content: file is not valid UTF-8 text")
)
