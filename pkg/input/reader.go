// ABOUTME: Reader turns raw terminal bytes into logical key events, one per Next call.
// ABOUTME: Buffers escape sequences and resolves a lone ESC via a tunable timeout.

package input

import (
	"io"
	"sync"
	"time"
	"unicode/utf8"

	"fuzzyfind/pkg/key"
)

const readBufSize = 256

// DefaultEscTimeout is how long a lone ESC byte is held before it is
// reported as the Escape key rather than the start of an arrow-key
// sequence. The exact value is a policy knob, not a contract: slow
// terminals or links may deliver sequence bytes later than any threshold.
const DefaultEscTimeout = 50 * time.Millisecond

// Reader reads raw bytes from an io.Reader and produces parsed key events.
// It owns a background goroutine performing the blocking reads; Next is
// the single suspension point for callers.
type Reader struct {
	escTimeout time.Duration
	ch         chan readResult
	done       chan struct{}
	closeOnce  sync.Once
	buf        []byte
	err        error // sticky; set once the source fails or ends
}

type readResult struct {
	data []byte
	err  error
}

// NewReader starts reading from r. A non-positive escTimeout selects
// DefaultEscTimeout.
func NewReader(r io.Reader, escTimeout time.Duration) *Reader {
	if escTimeout <= 0 {
		escTimeout = DefaultEscTimeout
	}
	rd := &Reader{
		escTimeout: escTimeout,
		ch:         make(chan readResult),
		done:       make(chan struct{}),
		buf:        make([]byte, 0, readBufSize),
	}
	go rd.readLoop(r)
	return rd
}

// Close signals the read goroutine to stop. A goroutine blocked inside the
// source's Read exits on its next return instead of handing the bytes to a
// Next nobody will call, so a later Reader on the same descriptor is not
// raced for input. Close is idempotent and safe to defer.
func (rd *Reader) Close() {
	rd.closeOnce.Do(func() { close(rd.done) })
}

// readLoop performs blocking reads and hands the bytes to Next via ch.
// It exits, closing ch, when the source returns an error or EOF, or when
// Close fires while a send is pending.
func (rd *Reader) readLoop(src io.Reader) {
	defer close(rd.ch)
	tmp := make([]byte, readBufSize)
	for {
		n, err := src.Read(tmp)
		if n > 0 {
			data := make([]byte, n)
			copy(data, tmp[:n])
			select {
			case rd.ch <- readResult{data: data}:
			case <-rd.done:
				return
			}
		}
		if err != nil {
			select {
			case rd.ch <- readResult{err: err}:
			case <-rd.done:
			}
			return
		}
	}
}

// Next blocks until one logical key event is available and returns it.
// After the underlying reader fails or reaches EOF, buffered input is
// drained first and the error is returned on subsequent calls.
func (rd *Reader) Next() (key.Key, error) {
	for {
		if len(rd.buf) > 0 {
			consumed, k, needMore := rd.tryParse()
			if consumed > 0 {
				rd.buf = rd.buf[consumed:]
				return k, nil
			}
			if needMore {
				if rd.err == nil && rd.waitForMore() {
					continue
				}
				// Timed out, or no more bytes are coming: a held ESC
				// is the Escape key, anything else is dropped so the
				// remaining bytes parse on their own.
				first := rd.buf[0]
				rd.buf = rd.buf[1:]
				if first == 0x1b {
					return key.Key{Type: key.KeyEscape}, nil
				}
				continue
			}
		}

		if rd.err != nil {
			return key.Key{}, rd.err
		}
		res, ok := <-rd.ch
		if !ok {
			rd.err = io.EOF
			continue
		}
		if res.err != nil {
			rd.err = res.err
			continue
		}
		rd.buf = append(rd.buf, res.data...)
	}
}

// tryParse attempts to parse one key from the front of the buffer.
// Returns (consumed bytes, parsed key, needs-more-bytes flag).
func (rd *Reader) tryParse() (int, key.Key, bool) {
	if rd.buf[0] == 0x1b {
		if len(rd.buf) == 1 {
			// Lone ESC or the start of a sequence; wait and see.
			return 0, key.Key{}, true
		}
		return rd.parseEscape()
	}

	if !utf8.FullRune(rd.buf) {
		if len(rd.buf) < utf8.UTFMax {
			return 0, key.Key{}, true
		}
		// Long enough but still invalid; drop one byte.
		return 1, key.Key{Type: key.KeyUnknown}, false
	}

	r, size := utf8.DecodeRune(rd.buf)
	if r == utf8.RuneError {
		return 1, key.Key{Type: key.KeyUnknown}, false
	}
	return size, key.ParseKey(string(rd.buf[:size])), false
}

// parseEscape parses an ESC-prefixed sequence, longest candidate first.
func (rd *Reader) parseEscape() (int, key.Key, bool) {
	maxLen := min(len(rd.buf), 8)
	for end := maxLen; end >= 2; end-- {
		k := key.ParseKey(string(rd.buf[:end]))
		if k.Type != key.KeyUnknown {
			return end, k, false
		}
	}

	if rd.buf[1] == '[' || rd.buf[1] == 'O' {
		// A CSI or SS3 sequence the legacy table does not know, such as
		// Shift+Tab or a modified arrow. Consume it whole, through its
		// final byte (0x40..0x7E), and report it as unknown: an unmapped
		// key must neither cancel the session nor leak bytes into the
		// query.
		for i := 2; i < len(rd.buf); i++ {
			if rd.buf[i] >= 0x40 && rd.buf[i] <= 0x7e {
				return i + 1, key.Key{Type: key.KeyUnknown}, false
			}
		}
		if len(rd.buf) < readBufSize {
			return 0, key.Key{}, true // final byte still in flight
		}
		return len(rd.buf), key.Key{Type: key.KeyUnknown}, false
	}

	// ESC followed by a non-introducer byte; report the ESC and let the
	// rest re-parse on its own.
	return 1, key.Key{Type: key.KeyEscape}, false
}

// waitForMore pauses up to escTimeout for further bytes. It returns false
// when the timeout fired with nothing new to parse.
func (rd *Reader) waitForMore() bool {
	timer := time.NewTimer(rd.escTimeout)
	defer timer.Stop()

	select {
	case res, ok := <-rd.ch:
		if !ok {
			rd.err = io.EOF
			return true
		}
		if res.err != nil {
			rd.err = res.err
			return true
		}
		rd.buf = append(rd.buf, res.data...)
		return true
	case <-timer.C:
		return false
	}
}
