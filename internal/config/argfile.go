package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ArgFilePrefix marks an argument that names a file of further arguments.
const ArgFilePrefix = '@'

var ErrArgFileCycle = errors.New("argument file includes itself")

// ExpandArgs replaces every "@file" argument with the lines of that file, one argument
// per line. Blank lines are skipped. Argument files may reference other argument files.
func ExpandArgs(args []string) ([]string, error) {
	return expandArgs(args, nil)
}

func expandArgs(args []string, stack []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) < 2 || arg[0] != ArgFilePrefix {
			out = append(out, arg)
			continue
		}

		path := arg[1:]
		key, err := filepath.Abs(path)
		if err != nil {
			key = filepath.Clean(path)
		}
		if slices.Contains(stack, key) {
			return nil, &Error{Field: "argument file", Value: path, Err: ErrArgFileCycle}
		}

		lines, err := readArgFile(path)
		if err != nil {
			return nil, &Error{Field: "argument file", Value: path, Err: err}
		}
		nested, err := expandArgs(lines, append(slices.Clip(stack), key))
		if err != nil {
			return nil, err
		}
		out = append(out, nested...)
	}
	return out, nil
}

func readArgFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		// Blank lines are dropped rather than passed on as empty arguments.
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
