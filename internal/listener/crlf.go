package listener

import (
	"bytes"
	"io"
)

// crlfConn wraps an io.ReadWriter and converts \n to \r\n on writes, and
// normalizes \r\n and bare \r to \n on reads. Telnet requires CRLF line
// endings; SSH clients without a PTY send bare \r.
type crlfConn struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfConn{rw: rw}
}

func (c *crlfConn) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		data := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))
		n = copy(p, data)
	}
	return n, err
}

func (c *crlfConn) Write(p []byte) (int, error) {
	converted := bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))
	_, err := c.rw.Write(converted)
	// Report the caller's length, not the expanded one.
	return len(p), err
}
