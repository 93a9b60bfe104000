package main

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

func TestConfigMode(t *testing.T) {
	cfg := Config{
		Device:   "/dev/ttyUSB0",
		BaudRate: 9600,
		DataBits: 7,
		Parity:   "even",
		StopBits: "two",
	}
	mode, err := cfg.mode()
	require.NoError(t, err)
	require.Equal(t, 9600, mode.BaudRate)
	require.Equal(t, 7, mode.DataBits)
	require.Equal(t, serial.EvenParity, mode.Parity)
	require.Equal(t, serial.TwoStopBits, mode.StopBits)
}

func TestParseParity(t *testing.T) {
	cases := []struct {
		value string
		want  serial.Parity
		ok    bool
	}{
		{"even", serial.EvenParity, true},
		{"odd", serial.OddParity, true},
		{"none", serial.NoParity, true},
		{"mark", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		parity, err := parseParity(c.value)
		if !c.ok {
			require.Error(t, err, "parity %q", c.value)
			continue
		}
		require.NoError(t, err, "parity %q", c.value)
		require.Equal(t, c.want, parity)
	}
}

func TestParseStopBits(t *testing.T) {
	cases := []struct {
		value string
		want  serial.StopBits
		ok    bool
	}{
		{"one", serial.OneStopBit, true},
		{"two", serial.TwoStopBits, true},
		{"three", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		stopBits, err := parseStopBits(c.value)
		if !c.ok {
			require.Error(t, err, "stop bits %q", c.value)
			continue
		}
		require.NoError(t, err, "stop bits %q", c.value)
		require.Equal(t, c.want, stopBits)
	}
}

func TestInvalidParityIsFatal(t *testing.T) {
	cfg := Config{BaudRate: 115200, DataBits: 8, Parity: "space", StopBits: "one"}
	_, err := cfg.mode()
	require.Error(t, err)
}

func TestInvalidStopBitsIsFatal(t *testing.T) {
	cfg := Config{BaudRate: 115200, DataBits: 8, Parity: "none", StopBits: "1.5"}
	_, err := cfg.mode()
	require.Error(t, err)
}

func TestDataBitsFallback(t *testing.T) {
	var logBuf bytes.Buffer
	log.SetOutput(&logBuf)
	defer log.SetOutput(os.Stderr)

	cfg := Config{BaudRate: 115200, DataBits: 9, Parity: "none", StopBits: "one"}
	mode, err := cfg.mode()
	require.NoError(t, err)
	require.Equal(t, 8, mode.DataBits)
	require.Contains(t, logBuf.String(), "Unsupported data bits: 9")
}

func TestDataBitsInRangeKept(t *testing.T) {
	for _, bits := range []int{5, 6, 7, 8} {
		require.Equal(t, bits, dataBitsOrDefault(bits))
	}
}
