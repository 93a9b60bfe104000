package main

import (
	"io"
	"log"
)

// chunkSize is the maximum number of bytes moved per iteration in each
// direction.
const chunkSize = 1024

// relay forwards bytes between the serial endpoint and the connected TCP
// peer until the process is terminated. Each direction runs its own
// blocking read-then-write loop, so a silent or stalled endpoint on one
// side never holds up traffic on the other. There is no shutdown path;
// the relay is stopped by killing the process.
func relay(serialPort io.ReadWriter, socket io.ReadWriter) {
	go forward(socket, serialPort, "socket", "serial")
	forward(serialPort, socket, "serial", "socket")
}

// forward moves bytes from src to dst one chunk at a time. Bytes obtained
// by a single read are written as one contiguous write, so ordering within
// a chunk is preserved, and the next read does not start until that write
// has completed. Every read or write error is logged and the loop
// continues; nothing here closes an endpoint or stops the relay. A
// zero-byte read is not end-of-stream and produces no write.
func forward(dst io.Writer, src io.Reader, dstName, srcName string) {
	buf := make([]byte, chunkSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				log.Printf("%s write failed: %v", dstName, werr)
			}
		}
		if err != nil {
			log.Printf("%s read error: %v", srcName, err)
		}
	}
}
