package process

import (
	"errors"
	"io"
	"time"

	"github.com/dirk/quickhook/internal/logging"
)

// relayRetryInterval bounds how long the relay waits before reading again after a would-block
const relayRetryInterval = 10 * time.Millisecond

const relayBufferSize = 32 * 1024

type readFunc func(p []byte) (int, error)

type relayState int

const (
	relayReading relayState = iota
	relayWaiting
	relayDone
	relayFailed
)

func (s relayState) String() string {
	switch s {
	case relayReading:
		return "reading"
	case relayWaiting:
		return "waiting"
	case relayDone:
		return "done"
	case relayFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// relay copies bytes from a non-blocking source until it reports closure.
//
//	Reading -> data        -> emit, Reading
//	Reading -> would-block -> Waiting -> sleep -> Reading
//	Reading -> EOF / EIO   -> Done
//	Reading -> other error -> Failed
type relay struct {
	read  readFunc
	out   io.Writer
	sleep func(time.Duration)
	wait  time.Duration
}

func newRelay(read readFunc, out io.Writer) *relay {
	return &relay{
		read:  read,
		out:   out,
		sleep: time.Sleep,
		wait:  relayRetryInterval,
	}
}

// run drives the state machine to a terminal state.
// It returns nil for Done and the offending error for Failed.
func (r *relay) run() error {
	buf := make([]byte, relayBufferSize)
	state := relayReading
	var failure error

	for {
		switch state {
		case relayReading:
			n, err := r.read(buf)
			if n > 0 {
				if _, werr := r.out.Write(buf[:n]); werr != nil {
					failure = werr
					state = relayFailed
					continue
				}
			}
			state = nextRelayState(err)
			if state == relayFailed {
				failure = err
			}
		case relayWaiting:
			r.sleep(r.wait)
			state = relayReading
		case relayDone:
			return nil
		case relayFailed:
			logging.Logger.Debug("Relay failed", "state", state.String(), "error", failure)
			return failure
		}
	}
}

// nextRelayState classifies the outcome of one read
func nextRelayState(err error) relayState {
	switch {
	case err == nil:
		return relayReading
	case errors.Is(err, io.EOF), isClosedError(err):
		return relayDone
	case isWouldBlockError(err):
		return relayWaiting
	default:
		return relayFailed
	}
}
