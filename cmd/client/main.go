package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddr string `envconfig:"CHAT_SERVER_ADDR" default:"localhost:12345"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"INFO"`
	// CHAT_COLOURS enables colorized output for better readability
	Colours bool `envconfig:"CHAT_COLOURS" default:"true"`
}

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run connects to the chat server, pumps everything the server sends to the
// terminal on a background goroutine, and forwards stdin lines until "exit"
// or the server closes the connection.
func run() (int, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	conn, err := net.Dial("tcp", config.ServerAddr)
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddr, err)
	}
	defer func() { _ = conn.Close() }()

	log.Info("Connected to server", "addr", config.ServerAddr)

	// Receiver: raw chunks, not lines, because the credential prompts carry
	// no trailing newline.
	done := make(chan struct{})
	go func() {
		defer close(done)
		buf := make([]byte, 1024)
		for {
			n, err := conn.Read(buf)
			if n > 0 {
				render(config.Colours, string(buf[:n]))
			}
			if err != nil {
				return
			}
		}
	}()

	stdin := bufio.NewScanner(os.Stdin)
	for stdin.Scan() {
		line := stdin.Text()
		if _, err := fmt.Fprintf(conn, "%s\n", line); err != nil {
			break
		}
		if line == "exit" {
			break
		}
	}

	<-done
	log.Info("Disconnected from server")
	return exitOK, nil
}

// render colorizes server output: errors red, chat messages green.
func render(colours bool, chunk string) {
	if !colours {
		fmt.Print(chunk)
		return
	}
	switch {
	case strings.HasPrefix(chunk, "Error:"):
		color.Red.Print(chunk)
	case strings.HasPrefix(chunk, "["):
		color.Green.Print(chunk)
	default:
		fmt.Print(chunk)
	}
}
