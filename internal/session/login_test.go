package session

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type fakeConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *fakeConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func TestRunLogin(t *testing.T) {
	tests := map[string]struct {
		input    string
		want     string
		wantErr  bool
		rejected bool
	}{
		"simple":           {input: "alice\n", want: "alice"},
		"trimmed":          {input: "  alice  \n", want: "alice"},
		"crlf":             {input: "alice\r\n", want: "alice"},
		"digits and score": {input: "alice_2\n", want: "alice_2"},
		"empty":            {input: "\n", wantErr: true, rejected: true},
		"whitespace only":  {input: "   \n", wantErr: true, rejected: true},
		"spaces inside":    {input: "bad guy\n", wantErr: true, rejected: true},
		"punctuation":      {input: "alice!\n", wantErr: true, rejected: true},
		"connection drop":  {input: "", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &fakeConn{Reader: strings.NewReader(tt.input)}

			username, err := runLogin(bufio.NewReader(conn), conn)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if tt.rejected && !strings.Contains(conn.out.String(), "Invalid username. Disconnecting.") {
					t.Error("missing rejection message")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "username", username, tt.want)
			if !strings.Contains(conn.out.String(), "Welcome to the Realm of Adventures!") {
				t.Error("missing banner")
			}
			if !strings.Contains(conn.out.String(), "Enter your username: ") {
				t.Error("missing prompt")
			}
		})
	}
}

func TestRunLogin_LeavesPipelinedInputBuffered(t *testing.T) {
	conn := &fakeConn{Reader: strings.NewReader("alice\nsay hello\n")}
	reader := bufio.NewReader(conn)

	username, err := runLogin(reader, conn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "username", username, "alice")

	line, err := reader.ReadString('\n')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "pipelined line", line, "say hello\n")
}
