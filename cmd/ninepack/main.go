package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/arloliu/ninepack/cmd/ninepack/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("Error running command")
	}
}
