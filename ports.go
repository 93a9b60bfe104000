package main

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// printPortList writes the names of the serial ports present on the
// system, one per line.
func printPortList(w io.Writer) error {
	ports, err := serial.GetPortsList()
	if err != nil {
		return err
	}
	if len(ports) == 0 {
		fmt.Fprintln(w, "No serial ports found")
		return nil
	}
	for _, name := range ports {
		fmt.Fprintln(w, name)
	}
	return nil
}
