package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logger writes to stderr; stdout is reserved for failure diagnostics.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "sprites",
	Level:           log.InfoLevel,
})
