package main

import (
	"io"
	"os"
	"time"

	latex2png "github.com/alnah/go-latex2png"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	OutputPath string // Where the image is written; not a user setting
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		OutputPath: latex2png.DefaultOutputPath(),
	}
}
