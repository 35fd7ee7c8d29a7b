package generator

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirkon/go-format"
)

// Collector accumulates generated source line by line. Line treats $0, $1, ... as references to
// its parameters, every $N used must have a parameter. Text with $ or with a placeholder directly
// followed by identifier characters goes through Rawl instead.
type Collector struct {
	buf bytes.Buffer
}

// Line puts a line with $N replaced by the N-th parameter
func (r *Collector) Line(line string, p ...interface{}) {
	r.buf.WriteString(format.Formatp(line, p...))
	r.buf.WriteByte('\n')
}

// Rawl puts a line as is, nothing is substituted
func (r *Collector) Rawl(line string) {
	r.buf.WriteString(line)
	r.buf.WriteByte('\n')
}

// Newl puts an empty line
func (r *Collector) Newl() {
	r.buf.WriteByte('\n')
}

// Bytes returns the collected source
func (r *Collector) Bytes() []byte {
	return r.buf.Bytes()
}

// String returns the collected source as a string
func (r *Collector) String() string {
	return r.buf.String()
}

// listing error with numbered lines of the source it was reported for
func listing(err error, src string) error {
	var buf strings.Builder
	buf.WriteString(err.Error())
	buf.WriteByte('\n')
	lines := strings.Split(src, "\n")
	errFmt := fmt.Sprintf("%%0%dd", len(strconv.Itoa(len(lines)+1)))
	for i, l := range lines {
		_, _ = fmt.Fprintf(&buf, errFmt, i+1)
		buf.WriteByte(' ')
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	return errors.New(buf.String())
}
