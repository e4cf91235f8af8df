package transfer

import (
	"fmt"
	"io"

	"github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"
	"go.uber.org/zap"

	"miniftp/internal/transport"
)

// Engine drives one command flow over an established connection. One
// instance serves exactly one client invocation.
type Engine struct {
	conn *transport.Conn
	log  *zap.SugaredLogger
	dir  string
	out  io.Writer
}

// NewEngine binds a flow to the connection, the working directory files are
// read from and written to, and the writer progress bars render on.
func NewEngine(conn *transport.Conn, log *zap.SugaredLogger, dir string, out io.Writer) *Engine {
	return &Engine{conn: conn, log: log, dir: dir, out: out}
}

func (e *Engine) newBar(tag, name string, total int64) (*mpb.Progress, *mpb.Bar) {
	p := mpb.New(mpb.WithOutput(e.out), mpb.WithWidth(64))
	bar := p.AddBar(total,
		mpb.PrependDecorators(
			decor.Name(fmt.Sprintf("[%s] %s ", tag, name)),
		),
		mpb.AppendDecorators(
			decor.Counters(decor.UnitKiB, "% .2f / % .2f"),
		),
	)
	return p, bar
}
