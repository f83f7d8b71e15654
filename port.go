package tsl1128

import (
	"strings"
	"time"

	"go.bug.st/serial"
)

// DefaultBaudRate is the baud rate the TSL-1128 uses over USB.
const DefaultBaudRate = 115200

// usbPortPatterns are substrings of typical USB serial adapter names.
var usbPortPatterns = []string{"usbserial", "usbmodem", "ttyUSB", "ttyACM"}

// OpenPort opens the named serial port with the reader's settings
// (115200 baud, 8 data bits, no parity, one stop bit).
func OpenPort(name string) (serial.Port, error) {
	mode := &serial.Mode{
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	return serial.Open(name, mode)
}

// ListPorts returns the names of all serial ports on the system.
func ListPorts() ([]string, error) {
	return serial.GetPortsList()
}

// FindPort returns the first port that looks like a USB serial adapter.
func FindPort() (string, bool) {
	ports, err := serial.GetPortsList()

	if err != nil {
		return "", false
	}

	for _, port := range ports {
		for _, pattern := range usbPortPatterns {
			if strings.Contains(port, pattern) {
				return port, true
			}
		}
	}

	return "", false
}

// KickPort briefly drops DTR and RTS on the named port so a wedged reader
// starts responding again without being unplugged.
func KickPort(name string) error {
	port, err := OpenPort(name)

	if err != nil {
		return err
	}

	defer port.Close()

	if err := port.SetDTR(false); err != nil {
		return err
	}

	if err := port.SetRTS(false); err != nil {
		return err
	}

	time.Sleep(50 * time.Millisecond)

	if err := port.SetDTR(true); err != nil {
		return err
	}

	return port.SetRTS(true)
}
