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

// Put uploads a file from the working directory. Local preflight checks run
// before any size negotiation; on success the flow is request, readiness
// response, decimal size, then the raw byte stream in 4096-byte chunks.
func (e *Engine) Put(name string) error {
	path := filepath.Join(e.dir, name)
	if err := e.preflight(name, path); err != nil {
		return err
	}
	e.log.Infof("[OK!] File '%s' found in client directory. Sending server total file-size.", name)

	if err := e.conn.Send(protocol.PutRequest(name)); err != nil {
		return err
	}
	resp, err := e.conn.Receive(protocol.ReadinessMax)
	if err != nil {
		return errors.Wrap(err, "reading readiness response")
	}
	r := protocol.Classify(string(resp))
	switch r.Kind {
	case protocol.KindError:
		return &protocol.TokenError{Token: r.Token}
	case protocol.KindInfo:
		e.log.Infof("[OK!] Server response: %q - %s", r.Token, r.Token.Description())
	default:
		return &protocol.ViolationError{Response: r.Raw}
	}

	size, err := fsutil.Size(path)
	if err != nil {
		return err
	}
	if err := e.conn.Send([]byte(strconv.FormatInt(size, 10))); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	max := units.FormatBytes(size)
	p, bar := e.newBar("UPL", name, size)
	var sent int64
	buf := make([]byte, protocol.ChunkSize)
	for {
		n, rerr := f.Read(buf)
		if n > 0 {
			if err := e.conn.Send(buf[:n]); err != nil {
				bar.Abort(true)
				p.Wait()
				return err
			}
			sent += int64(n)
			bar.IncrBy(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			bar.Abort(true)
			p.Wait()
			return errors.Wrap(rerr, "reading file chunk")
		}
	}
	p.Wait()
	e.log.Infof("[UPL] Upload Complete '%s' [%s / %s]", name, units.FormatBytes(sent), max)
	return nil
}

// preflight runs the local PUT checks in protocol order, short-circuiting
// at the first failure. The failing token is sent to the peer before the
// command aborts so the server side can log the reason; that send is best
// effort.
func (e *Engine) preflight(name, path string) error {
	exists, err := fsutil.ExistsInDir(e.dir, name)
	if err != nil {
		return err
	}

	var tok protocol.Token
	switch {
	case !exists:
		tok = protocol.FileNotFound
	case len(name) > protocol.MaxFileNameLen:
		tok = protocol.FileNameTooLong
	case fsutil.IsDir(path):
		tok = protocol.FileIsDirectory
	}
	if tok == "" {
		size, err := fsutil.Size(path)
		if err != nil {
			return err
		}
		switch {
		case size > protocol.MaxFileSize:
			tok = protocol.FileTooLarge
		case size == 0:
			tok = protocol.FileZeroSized
		}
	}
	if tok == "" {
		return nil
	}
	_ = e.conn.Send([]byte(tok))
	return &protocol.TokenError{Token: tok}
}
