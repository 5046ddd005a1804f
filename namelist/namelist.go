/*
Package namelist streams domain names from line-oriented text input.

Every non-empty line holds one name. Surrounding white space is trimmed;
lines starting with '%' or '#' are comments. This is the format of the
test lists used with the punycode command, e.g.

	% labels from RFC 3492, section 7.1
	bücher.example
	ひとつ屋根の下2
*/
package namelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Reader streams names from an io.Reader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next name.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("line %d: %w", r.line+1, err)
	}
	return "", io.EOF
}

// Line returns the input line number of the name last returned by Next.
func (r *Reader) Line() int {
	return r.line
}

// Convert reads all names from reader, applies fn to each of them and
// writes the results to w, one per line. It stops at the first error.
func Convert(reader io.Reader, w io.Writer, fn func(string) (string, error)) error {
	r := NewReader(reader)
	bw := bufio.NewWriter(w)
	for {
		name, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		converted, err := fn(name)
		if err != nil {
			return fmt.Errorf("line %d: %w", r.Line(), err)
		}
		if _, err = fmt.Fprintln(bw, converted); err != nil {
			return err
		}
	}
	return bw.Flush()
}
