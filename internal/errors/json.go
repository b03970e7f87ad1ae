package errors

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
)

// JSONPosition converts the byte offset carried by a json.SyntaxError or
// json.UnmarshalTypeError into a 1-based line and column within data.
func JSONPosition(data []byte, err error) (line, column int, ok bool) {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case stderrors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case stderrors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0, 0, false
	}
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0, false
	}

	prefix := data[:offset]
	line = bytes.Count(prefix, []byte{'\n'}) + 1
	column = len(prefix) - bytes.LastIndexByte(prefix, '\n')
	return line, column, true
}
