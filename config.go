package main

import (
	"fmt"
	"log"

	"go.bug.st/serial"
)

// Config is the fixed configuration record a single run consumes. It is
// assembled once from the command line and never changes afterwards.
type Config struct {
	Device   string
	BaudRate int
	DataBits int
	Parity   string
	StopBits string
	TCPPort  int
}

// mode maps the configuration onto the serial library's Mode. An
// unrecognized data-bits value falls back to 8 with a warning; an
// unrecognized parity or stop-bits value is an error and aborts startup.
func (c Config) mode() (*serial.Mode, error) {
	parity, err := parseParity(c.Parity)
	if err != nil {
		return nil, err
	}
	stopBits, err := parseStopBits(c.StopBits)
	if err != nil {
		return nil, err
	}
	return &serial.Mode{
		BaudRate: c.BaudRate,
		DataBits: dataBitsOrDefault(c.DataBits),
		Parity:   parity,
		StopBits: stopBits,
	}, nil
}

func dataBitsOrDefault(bits int) int {
	switch bits {
	case 5, 6, 7, 8:
		return bits
	}
	log.Printf("Unsupported data bits: %d. Using 8 as default.", bits)
	return 8
}

func parseParity(value string) (serial.Parity, error) {
	switch value {
	case "even":
		return serial.EvenParity, nil
	case "odd":
		return serial.OddParity, nil
	case "none":
		return serial.NoParity, nil
	}
	return serial.NoParity, fmt.Errorf("unsupported parity %q (expected even, odd or none)", value)
}

func parseStopBits(value string) (serial.StopBits, error) {
	switch value {
	case "one":
		return serial.OneStopBit, nil
	case "two":
		return serial.TwoStopBits, nil
	}
	return serial.OneStopBit, fmt.Errorf("unsupported stop bits %q (expected one or two)", value)
}
