// Command dijkbench times two external Dijkstra executables, ./Dijkstra
// (N²) and ./DijkstraNlogN (N log N), on random graphs of 10, 50, 100 and
// 150 nodes and prints one table per executable.
//
// The report goes to stdout and logs go to stderr. The command takes no
// flags and reads no environment. If an executable cannot be launched, the
// error is logged at fatal level and the process exits non-zero.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/dijkbench/bench"
	"github.com/katalvlaran/dijkbench/report"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(zerolog.InfoLevel)

	cfg := bench.DefaultConfig()
	cfg.Logger = log.Logger

	res, err := bench.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("benchmark aborted")
	}
	if err := report.Write(os.Stdout, res); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}
