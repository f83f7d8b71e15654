package tsl1128

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/basilfx/go-utilities/taskrunner"
	"github.com/twinj/uuid"
)

// Listener represents the identifier of a listener.
type Listener uuid.UUID

// ExecuteTimeout is the time the Execute method waits for a response.
const ExecuteTimeout = 5 * time.Second

// WriterChannelSize is the size of the writer channel.
const WriterChannelSize = 32

// ListenerChannelSize is the size of the channel that is created for each
// listener.
const ListenerChannelSize = 32

// Reader drives the command/response exchange with a TSL-1128 over a
// byte stream, typically a serial port.
type Reader struct {
	stream io.ReadWriter

	taskRunner *taskrunner.TaskRunner

	parser    *ResponseParser
	writer    chan string
	listeners map[Listener]chan ResponseEvent
	lock      sync.RWMutex
}

// New returns a new Reader with the default decoder registry.
func New() *Reader {
	return NewWithRegistry(DefaultRegistry())
}

// NewWithRegistry returns a new Reader that decodes payloads with the
// given registry.
func NewWithRegistry(registry *Registry) *Reader {
	return &Reader{
		parser:     NewResponseParser(registry),
		writer:     make(chan string, WriterChannelSize),
		listeners:  map[Listener]chan ResponseEvent{},
		taskRunner: taskrunner.New(),
	}
}

// Register interest in completed responses.
func (r *Reader) Register() (Listener, chan ResponseEvent) {
	c := make(chan ResponseEvent, ListenerChannelSize)
	id := Listener(uuid.NewV4())

	r.lock.Lock()
	defer r.lock.Unlock()

	r.listeners[id] = c

	return id, c
}

// Unregister interest in completed responses.
func (r *Reader) Unregister(id Listener) {
	r.lock.Lock()
	defer r.lock.Unlock()

	c, ok := r.listeners[id]

	if !ok {
		return
	}

	delete(r.listeners, id)

	close(c)
}

// Execute sends a single command and waits for its response or a
// time-out. The response is matched on the echoed command.
func (r *Reader) Execute(command string) (ResponseEvent, error) {
	if strings.ContainsRune(command, ';') {
		return ResponseEvent{}, errors.New("execute takes a single command")
	}

	normalized := NormalizeCommand(command)

	id, c := r.Register()
	defer r.Unregister(id)

	// Create goroutine that waits for the matching response.
	ctx, cancel := context.WithTimeout(context.Background(), ExecuteTimeout)
	defer cancel()

	response := make(chan ResponseEvent)
	defer close(response)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-c:
				if event.Command == normalized {
					response <- event
					return
				}
			}
		}
	}()

	// Send the command to the writer.
	err := r.Send(command)

	if err != nil {
		return ResponseEvent{}, err
	}

	// Wait for the response.
	select {
	case <-ctx.Done():
		return ResponseEvent{}, errors.New("timeout while waiting for response")
	case event := <-response:
		return event, nil
	}
}

// Send enqueues a command without waiting for its response. Chained
// commands separated by ';' are written as individual lines.
func (r *Reader) Send(command string) error {
	select {
	case r.writer <- command:
		return nil
	default:
		return errors.New("writer channel full")
	}
}

// Serve a stream. The parser starts from a clean state, so a Reader can
// serve a new connection after the previous one was shut down.
func (r *Reader) Serve(stream io.ReadWriter) {
	r.stream = stream
	r.parser.Reset()

	r.taskRunner.RunWithCancel("Reader.Writer", r.writerTask)
	r.taskRunner.RunWithCancel("Reader.Reader", r.readerTask)

	// Wait for both goroutines to complete.
	r.taskRunner.Wait()
}

// Shutdown the reader. This does not close the underlying stream.
func (r *Reader) Shutdown() {
	if r.taskRunner != nil {
		r.taskRunner.Cancel()
	}
}
