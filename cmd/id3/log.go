package main

import (
	"log/slog"

	"github.com/pbanos/id3/internal/logging"
)

// Logger returns the logger commands report their progress with:
// debug records are only written with the verbose flag.
func (rcc *rootCmdConfig) Logger() *slog.Logger {
	if rcc.logger == nil {
		if rcc.stderr == nil {
			rcc.logger = logging.New(logging.Level(rcc.verbose))
		} else {
			rcc.logger = logging.NewWithWriter(rcc.stderr, logging.Level(rcc.verbose))
		}
	}
	return rcc.logger
}
