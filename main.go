package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	serialPort := pflag.String("serial-port", "", "Serial device path (e.g. /dev/ttyUSB0)")
	baudRate := pflag.Int("baud-rate", 115200, "Baud rate")
	dataBits := pflag.Int("data-bits", 8, "Data bits (5, 6, 7 or 8)")
	parity := pflag.String("parity", "none", "Parity: even, odd or none")
	stopBits := pflag.String("stop-bits", "one", "Stop bits: one or two")
	tcpPort := pflag.Int("tcp-port", 11223, "TCP listen port")
	listPorts := pflag.Bool("list-ports", false, "List available serial ports and exit")
	pflag.Parse()

	if *listPorts {
		if err := printPortList(os.Stdout); err != nil {
			log.Fatalf("Failed to enumerate serial ports: %v", err)
		}
		return
	}

	if *serialPort == "" {
		log.Fatal("Please specify a serial device using the --serial-port flag")
	}

	cfg := Config{
		Device:   *serialPort,
		BaudRate: *baudRate,
		DataBits: *dataBits,
		Parity:   *parity,
		StopBits: *stopBits,
		TCPPort:  *tcpPort,
	}

	port, err := openSerialPort(cfg)
	if err != nil {
		log.Fatalf("Failed to open serial port: %v", err)
	}
	defer port.Close()

	log.Printf("Connected to %s at %d baud", cfg.Device, cfg.BaudRate)

	listener, err := listenTCP(cfg.TCPPort)
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	conn, err := acceptClient(listener)
	if err != nil {
		log.Fatalf("Failed to accept client: %v", err)
	}
	defer conn.Close()

	relay(port, conn)
}
