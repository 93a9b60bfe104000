package main

import (
	"fmt"
	"log"
	"net"

	"go.bug.st/serial"
)

// openSerialPort opens and configures the serial device for the run. The
// library leaves hardware and software flow control disabled, which is the
// only mode this bridge supports.
func openSerialPort(cfg Config) (serial.Port, error) {
	mode, err := cfg.mode()
	if err != nil {
		return nil, err
	}
	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return port, nil
}

// listenTCP binds the bridge's listening socket on all interfaces.
func listenTCP(port int) (net.Listener, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%d", port))
	if err != nil {
		return nil, fmt.Errorf("bind port %d: %w", port, err)
	}
	log.Printf("Listening on port %d", port)
	return listener, nil
}

// acceptClient blocks until the single peer of this process's lifetime
// connects. The listener is closed before returning; further inbound
// connections are never accepted.
func acceptClient(listener net.Listener) (net.Conn, error) {
	defer listener.Close()

	conn, err := listener.Accept()
	if err != nil {
		return nil, fmt.Errorf("accept: %w", err)
	}
	log.Printf("Client connected: %s", conn.RemoteAddr())
	return conn, nil
}
