package protocol

import "fmt"

// Wire limits shared by client and server.
const (
	ChunkSize      = 4096
	MaxFileSize    = 5368709120 // 5 GiB
	MaxFileNameLen = 255

	ReadinessMax = 24
	SizeMax      = 1024
	ListingMax   = 16384
)

// Token is a fixed-vocabulary string exchanged over the wire. Tokens are
// compared for exact equality against the raw received bytes, so the
// literals below are part of the wire contract.
type Token string

const (
	FileAlreadyExists Token = "FileAlreadyExists"
	FileNotFound      Token = "FileNotFound"
	FileTooLarge      Token = "FileTooLarge"
	FileZeroSized     Token = "FileZeroSized"
	FileNameTooLong   Token = "FileNameTooLong"
	FileIsDirectory   Token = "FileIsDirectory"

	FileOkTransfer   Token = "FileOkTransfer"
	FileSizeReceived Token = "FileSizeReceived"
)

var errorTokens = map[Token]string{
	FileAlreadyExists: "File already exists in current directory",
	FileNotFound:      "File could not be found in current directory",
	FileTooLarge:      "File is too large to transfer (over 5GB in size)",
	FileZeroSized:     "File is a zero-sized file (does not contain data)",
	FileNameTooLong:   "Filename of file is too long (over 255 chars)",
	FileIsDirectory:   "File is actually a directory (folder containing files)",
}

var infoTokens = map[Token]string{
	FileOkTransfer:   "No existing file present, OK to create new file.",
	FileSizeReceived: "The filesize of file being transferred has successfully been received.",
}

// Description returns the fixed human-readable text for a known token, or
// the token itself when it is not in either table.
func (t Token) Description() string {
	if d, ok := errorTokens[t]; ok {
		return d
	}
	if d, ok := infoTokens[t]; ok {
		return d
	}
	return string(t)
}

// Kind classifies a server response.
type Kind int

const (
	KindError Kind = iota
	KindInfo
	KindRaw
)

type Response struct {
	Kind  Kind
	Token Token  // set for KindError and KindInfo
	Raw   string // set for KindRaw
}

// Classify matches a response against the token tables. Only exact matches
// classify as Error or Info; everything else (a decimal filesize, a listing
// payload) is Raw.
func Classify(s string) Response {
	if _, ok := errorTokens[Token(s)]; ok {
		return Response{Kind: KindError, Token: Token(s)}
	}
	if _, ok := infoTokens[Token(s)]; ok {
		return Response{Kind: KindInfo, Token: Token(s)}
	}
	return Response{Kind: KindRaw, Raw: s}
}

// Request framing: ASCII, no trailing delimiter.

func PutRequest(filename string) []byte {
	return []byte("PUT " + filename)
}

func GetRequest(filename string) []byte {
	return []byte("GET " + filename)
}

func ListRequest() []byte {
	return []byte("LIST")
}

func DisconnectRequest() []byte {
	return []byte("DISCONNECT")
}

// TokenError is a fatal protocol error identified by its wire token, either
// reported by the peer or raised by a local PUT precondition check.
type TokenError struct {
	Token Token
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Token, e.Token.Description())
}

// ViolationError marks a server response that matches neither a token nor
// the shape the active flow expects.
type ViolationError struct {
	Response string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("protocol violation: unexpected server response %q", e.Response)
}
