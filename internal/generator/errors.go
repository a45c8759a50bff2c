package generator

import "fmt"

// DirectoryError reports that the output's parent directory could not be created.
// It is fatal: no output is written.
type DirectoryError struct {
	Dir    string
	Output string
	Err    error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("can't create directory '%s' for output file '%s': %v", e.Dir, e.Output, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// OutputError reports that the generated header could not be written. It is fatal.
type OutputError struct {
	Output string
	Err    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("can't write output file '%s': %v", e.Output, e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// ResourceError reports an input file that could not be read. The entry is skipped
// and generation continues.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("can't open file '%s': %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
