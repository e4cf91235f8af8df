package transfer

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"

	"miniftp/internal/fsutil"
	"miniftp/internal/protocol"
	"miniftp/internal/units"
)

// Get downloads a file into the working directory. The server answers the
// request with either an error token, an informational token followed by
// the size, or the decimal size directly; the byte stream that follows
// terminates when the announced size has been reached.
func (e *Engine) Get(name string) error {
	e.log.Infof("[CMD] Invoking Server Protocol 'GET' command with filename: %s", name)

	exists, err := fsutil.ExistsInDir(e.dir, name)
	if err != nil {
		return err
	}
	if exists {
		return &protocol.TokenError{Token: protocol.FileAlreadyExists}
	}

	if err := e.conn.Send(protocol.GetRequest(name)); err != nil {
		return err
	}
	resp, err := e.conn.Receive(protocol.SizeMax)
	if err != nil {
		return errors.Wrap(err, "reading size response")
	}
	r := protocol.Classify(string(resp))
	switch r.Kind {
	case protocol.KindError:
		return &protocol.TokenError{Token: r.Token}
	case protocol.KindInfo:
		e.log.Infof("[OK!] Server response: %q - %s", r.Token, r.Token.Description())
		// The size follows the status token.
		resp, err = e.conn.Receive(protocol.SizeMax)
		if err != nil {
			return errors.Wrap(err, "reading size response")
		}
		r = protocol.Classify(string(resp))
		if r.Kind != protocol.KindRaw {
			return &protocol.ViolationError{Response: string(resp)}
		}
	}
	size, perr := strconv.ParseInt(r.Raw, 10, 64)
	if perr != nil || size < 0 {
		return &protocol.ViolationError{Response: r.Raw}
	}

	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	max := units.FormatBytes(size)
	p, bar := e.newBar("DWN", name, size)
	var got int64
	for got < size {
		chunk, rerr := e.conn.Receive(protocol.ChunkSize)
		if rerr != nil {
			bar.Abort(true)
			p.Wait()
			_ = f.Close()
			if rerr == io.EOF {
				return errors.New("connection closed before transfer completed")
			}
			return rerr
		}
		// A chunk straddling the announced size is written whole, not
		// truncated at the boundary.
		if _, werr := f.Write(chunk); werr != nil {
			bar.Abort(true)
			p.Wait()
			_ = f.Close()
			return errors.Wrapf(werr, "writing %s", path)
		}
		got += int64(len(chunk))
		bar.IncrBy(len(chunk))
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", path)
	}
	p.Wait()
	e.log.Infof("[DWN] Download Complete '%s' [%s / %s]", name, units.FormatBytes(got), max)
	e.log.Infof("[OK!] File saved to: %s", path)
	return nil
}
