package session

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"miniftp/internal/protocol"
	"miniftp/internal/transfer"
	"miniftp/internal/transport"
)

// Kind tags the command variant a client run executes.
type Kind int

const (
	Put Kind = iota
	Get
	List
)

// Command is the single validated command of a client run. Filename is set
// for Put and Get only.
type Command struct {
	Kind     Kind
	Filename string
}

// Controller owns the connection lifecycle: it connects once per command,
// binds the command to its transfer flow and notifies the server on clean
// teardown.
type Controller struct {
	host string
	port int
	log  *zap.SugaredLogger
	dir  string
	out  io.Writer
}

func NewController(host string, port int, log *zap.SugaredLogger, dir string, out io.Writer) *Controller {
	return &Controller{host: host, port: port, log: log, dir: dir, out: out}
}

// Run executes the command over a fresh connection. Every failure is fatal
// for the command, there are no retries.
func (c *Controller) Run(cmd Command) error {
	conn, err := transport.Dial(c.host, c.port)
	if err != nil {
		return errors.Wrapf(err, "an error occurred when connecting to host %s:%d", c.host, c.port)
	}
	c.log.Infof("[CON] Successfully connected to server at: %s:%d", c.host, c.port)
	defer c.teardown(conn)

	eng := transfer.NewEngine(conn, c.log, c.dir, c.out)
	switch cmd.Kind {
	case Put:
		return eng.Put(cmd.Filename)
	case Get:
		return eng.Get(cmd.Filename)
	case List:
		return eng.List()
	}
	return errors.Errorf("unsupported command kind %d", cmd.Kind)
}

// teardown notifies the server and closes the socket. A failed DISCONNECT
// send is swallowed, the connection is going away regardless.
func (c *Controller) teardown(conn *transport.Conn) {
	if conn.Connected() {
		if err := conn.Send(protocol.DisconnectRequest()); err == nil {
			c.log.Infof("[DIS] Disconnected from server.")
		}
	}
	_ = conn.Close()
}
