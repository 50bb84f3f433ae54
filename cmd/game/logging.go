package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupTerminalLogging keeps log output off the screen while tcell owns
// the terminal. With an empty path logs are discarded, otherwise they are
// appended to the file at path and the file is returned for closing.
func setupTerminalLogging(path string) (*os.File, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
