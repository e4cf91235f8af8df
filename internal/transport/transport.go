package transport

import (
	"io"
	"net"
	"strconv"

	"github.com/pkg/errors"
)

// Conn owns the single TCP connection a command runs over. Send and Receive
// are only valid while the connection is open; there are no read or write
// deadlines, a hung peer hangs the caller.
type Conn struct {
	host      string
	port      int
	conn      net.Conn
	connected bool
}

// Dial opens the TCP connection. Resolution failure and connection refusal
// are fatal for the command; the caller gets the wrapped cause.
func Dial(host string, port int) (*Conn, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "connecting to host %s", addr)
	}
	return &Conn{host: host, port: port, conn: conn, connected: true}, nil
}

func (c *Conn) Connected() bool {
	return c.connected
}

// Send writes the whole buffer. net.Conn.Write blocks until every byte is
// written or the connection fails, so a nil error means all of p went out.
func (c *Conn) Send(p []byte) error {
	if !c.connected {
		return errors.New("send on closed connection")
	}
	_, err := c.conn.Write(p)
	return errors.Wrap(err, "send")
}

// Receive blocks until at least one byte arrives or the peer closes,
// returning up to max bytes. Peer close surfaces as io.EOF with no data.
func (c *Conn) Receive(max int) ([]byte, error) {
	if !c.connected {
		return nil, errors.New("receive on closed connection")
	}
	buf := make([]byte, max)
	for {
		n, err := c.conn.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, errors.Wrap(err, "receive")
		}
	}
}

// Close is idempotent.
func (c *Conn) Close() error {
	if !c.connected {
		return nil
	}
	c.connected = false
	return c.conn.Close()
}
