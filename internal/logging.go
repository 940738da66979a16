package internal

import (
	"log"
	"os"
)

// InitLogging routes CLI diagnostics to stdout with microsecond timestamps.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.SetPrefix("tollkit ")
}
