package transfer

import (
	"io"

	"github.com/pkg/errors"

	"miniftp/internal/protocol"
)

// List requests the remote directory listing, a single round trip. An
// empty response means the server failed to produce a listing and is
// fatal.
func (e *Engine) List() error {
	e.log.Infof("[CMD] Invoking Server Protocol 'LIST' command.")

	if err := e.conn.Send(protocol.ListRequest()); err != nil {
		return err
	}
	resp, err := e.conn.Receive(protocol.ListingMax)
	if err != nil && err != io.EOF {
		return errors.Wrap(err, "reading file list")
	}
	if len(resp) == 0 {
		return errors.New("Server responded without a file list.")
	}
	e.log.Infof("[OK!] Server responded with:\n%s", string(resp))
	return nil
}
