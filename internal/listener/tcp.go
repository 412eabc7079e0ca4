package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
)

// TcpListener serves the plain line-oriented protocol over a raw socket.
// Anything that can open a TCP connection and send newline-terminated text
// can play; nc and telnet clients both work.
type TcpListener struct {
	host string
	port uint16
	cm   *ConnectionManager
}

func NewTcpListener(host string, port uint16, cm *ConnectionManager) *TcpListener {
	return &TcpListener{
		host: host,
		port: port,
		cm:   cm,
	}
}

func (l *TcpListener) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", l.host, l.port))
	if err != nil {
		return fmt.Errorf("listening on %s:%d: %w", l.host, l.port, err)
	}

	slog.InfoContext(ctx, "listening for tcp", "host", l.host, "port", l.port)

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "accepting tcp connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer conn.Close()

			// Close the socket on shutdown so blocked reads return and the
			// session loop can exit.
			stop := context.AfterFunc(connCtx, func() {
				conn.Close()
			})
			defer stop()

			l.cm.AcceptConnection(connCtx, conn)
		}()
	}
}
