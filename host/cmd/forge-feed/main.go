// forge-feed is a development bridge for the placement station: it
// forwards hand-typed feed lines to the firmware and echoes the
// firmware's log output. Useful for exercising the workflow without a
// camera attached.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"forgestation/host/serial"
)

func main() {
	device := flag.String("device", "/dev/ttyACM0", "serial device of the station")
	baud := flag.Int("baud", 115200, "baud rate")
	echo := flag.Bool("echo", true, "print firmware output")
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", *device, err)
		os.Exit(1)
	}
	defer port.Close()

	if *echo {
		go func() {
			buf := make([]byte, 256)
			for {
				n, err := port.Read(buf)
				if err != nil {
					return
				}
				if n > 0 {
					os.Stdout.Write(buf[:n])
				}
			}
		}()
	}

	fmt.Println("connected, type feed lines (id,row,col / PICKUP,id,row,col / RELEASE), quit to exit")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		if _, err := port.Write([]byte(line + "\n")); err != nil {
			fmt.Fprintf(os.Stderr, "write: %v\n", err)
			return
		}
	}
}
