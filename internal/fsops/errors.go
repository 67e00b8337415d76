package fsops

import "errors"

// Sentinel errors for package fsops.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Lookup errors
	ErrPathNotFound        = errors.New("path not found")
	ErrInvalidPath         = errors.New("invalid path")
	ErrDirectoryUnreadable = errors.New("directory cannot be read")
	ErrTooManyLinks        = errors.New("too many levels of symbolic links")

	// Mutation errors
	ErrDirectoryNotEmpty = errors.New("directory is not empty")
	ErrCopy              = errors.New("copy failed")
	ErrCopyIntoSelf      = errors.New("cannot copy a directory into itself")
	ErrSameFile          = errors.New("source and destination are the same file")
	ErrCreate            = errors.New("create failed")
	ErrRemove            = errors.New("remove failed")

	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Command errors
	ErrInvalidArguments = errors.New("invalid arguments")
)

// PathError records the operation and path that produced an error.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error { return e.Err }

// causeError pairs a sentinel with the I/O error that triggered it so both
// stay reachable through errors.Is and errors.As.
type causeError struct {
	sentinel error
	cause    error
}

func (e *causeError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *causeError) Unwrap() []error { return []error{e.sentinel, e.cause} }

func pathErr(op, path string, sentinel, cause error) error {
	var err error = sentinel
	switch {
	case cause == nil:
	case errors.Is(cause, sentinel):
		err = cause
	default:
		err = &causeError{sentinel: sentinel, cause: cause}
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// copyErr builds a CopyError: a PathError carrying the offending path whose
// chain holds ErrCopy.
func copyErr(path string, cause error) error {
	return pathErr("copy", path, ErrCopy, cause)
}
