package tsl1128

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/acomagu/bufpipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDevice emulates a TSL-1128 behind an in-memory stream.
type testDevice struct {
	out1 io.ReadCloser
	in1  io.WriteCloser

	out2 io.ReadCloser
	in2  io.WriteCloser
}

func newTestDevice() *testDevice {
	d := &testDevice{}

	d.out1, d.in1 = bufpipe.New(nil)
	d.out2, d.in2 = bufpipe.New(nil)

	go d.emulate()

	return d
}

func (d *testDevice) emulate() {
	scanner := bufio.NewScanner(d.out2)

	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())

		if command == "" {
			continue
		}

		d.respond("CS: " + command)

		switch command {
		case ".vr":
			d.respond("MF:TSL", "UF:2.4.1", "OK:")
		case ".bl":
			d.respond("BV:3700", "BP:85%", "OK:")
		case ".iv":
			d.respond("EP:E1", "EP:E2", "EP:E1", "OK:")
		case ".ec on", ".ec off":
			d.respond("OK:")
		default:
			d.respond("ER:unknown command")
		}
	}
}

func (d *testDevice) respond(lines ...string) {
	for _, line := range lines {
		d.in1.Write([]byte(line + "\r\n"))
	}
}

func (d *testDevice) Read(p []byte) (n int, err error) {
	return d.out1.Read(p)
}

func (d *testDevice) Write(p []byte) (n int, err error) {
	return d.in2.Write(p)
}

func TestExecuteVersion(t *testing.T) {
	r := New()
	defer r.Shutdown()

	go r.Serve(newTestDevice())

	event, err := r.Execute(".vr")

	require.NoError(t, err)
	assert.Equal(t, ".vr", event.Command)
	assert.Equal(t, Outcome(OutcomeSuccess), event.Outcome)

	require.NotNil(t, event.Decoded)
	assert.Equal(t, "TSL", event.Decoded.Fields["Manufacturer"])
	assert.Equal(t, "2.4.1", event.Decoded.Fields["Firmware version"])
}

func TestExecuteBattery(t *testing.T) {
	r := New()
	defer r.Shutdown()

	go r.Serve(newTestDevice())

	event, err := r.Execute(".bl")

	require.NoError(t, err)
	require.NotNil(t, event.Decoded)
	assert.Equal(t, "3.70", event.Decoded.Fields["Battery voltage"])
	assert.Equal(t, "85", event.Decoded.Fields["Charge level"])
}

func TestExecuteInventory(t *testing.T) {
	r := New()
	defer r.Shutdown()

	go r.Serve(newTestDevice())

	event, err := r.Execute(".iv")

	require.NoError(t, err)
	require.NotNil(t, event.Decoded)
	assert.Equal(t, []TagCount{
		{EPC: "E1", Count: 2},
		{EPC: "E2", Count: 1},
	}, event.Decoded.Tags)
}

func TestExecuteDeviceError(t *testing.T) {
	r := New()
	defer r.Shutdown()

	go r.Serve(newTestDevice())

	event, err := r.Execute(".zz")

	require.NoError(t, err)
	assert.Equal(t, Outcome(OutcomeError), event.Outcome)
	assert.Equal(t, "unknown command", event.Trailer)
	assert.Nil(t, event.Decoded)
}

func TestExecuteRejectsChainedCommands(t *testing.T) {
	r := New()

	_, err := r.Execute(".ec on;.iv;.ec off")

	require.Error(t, err)
}

func TestSendChainedCommands(t *testing.T) {
	r := New()
	defer r.Shutdown()

	id, c := r.Register()
	defer r.Unregister(id)

	go r.Serve(newTestDevice())

	require.NoError(t, r.Send(".ec on;.iv;.ec off"))

	var commands []string

	for i := 0; i < 3; i++ {
		event := <-c
		commands = append(commands, event.Command)
	}

	assert.Equal(t, []string{".ec on", ".iv", ".ec off"}, commands)
}
