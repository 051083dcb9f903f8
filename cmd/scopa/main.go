package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"scopa-game/internal/config"
	"scopa-game/internal/game"
	"scopa-game/internal/protocol"
)

var errQuit = errors.New("quit")

// lineReader returns the next line typed by the players.
type lineReader func(prompt string) (string, error)

func scannerLines(r io.Reader) lineReader {
	sc := bufio.NewScanner(r)
	return func(string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
}

func promptLines() lineReader {
	return func(prompt string) (string, error) {
		return pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).Show()
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	}
	level := pterm.LogLevelError
	switch {
	case cfg.LogLevel <= slog.LevelDebug:
		level = pterm.LogLevelDebug
	case cfg.LogLevel < slog.LevelWarn:
		level = pterm.LogLevelInfo
	case cfg.LogLevel < slog.LevelError:
		level = pterm.LogLevelWarn
	}
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level)))
}

// driver is the hot-seat loop: it reads moves, hands them to the session and
// shows or transcribes what happened.
type driver struct {
	game       *game.Game
	cfg        config.Config
	read       lineReader
	transcript *protocol.Transcript // nil renders to the terminal
	logger     *slog.Logger
	sleep      func(time.Duration)
}

func newDriver(g *game.Game, cfg config.Config, logger *slog.Logger) *driver {
	return &driver{
		game:   g,
		cfg:    cfg,
		logger: logger,
		sleep:  time.Sleep,
	}
}

func (d *driver) emit(msgType string, payload interface{}) {
	if err := d.transcript.Emit(msgType, payload); err != nil {
		d.logger.Error("failed to write transcript", "type", msgType, "error", err)
	}
}

func (d *driver) run() error {
	for {
		if d.transcript != nil {
			d.emit(protocol.TypeMatchStarted, matchStartedPayload(d.game))
		} else {
			pterm.DefaultSection.Printfln("Match %d: %s plays first", d.game.MatchNumber, teamName(d.game, d.game.WhoIsFirst))
		}

		if err := d.playMatch(); err != nil {
			return quietQuit(err)
		}

		tally, _ := d.game.IsMatchOver()
		res, err := d.game.RecordMatch()
		if err != nil {
			return err
		}
		if d.transcript != nil {
			d.emit(protocol.TypeMatchOver, matchOverPayload(d.game, tally, res))
		} else {
			renderTally(d.game, tally, res)
		}

		if res.Winner != nil {
			if d.transcript != nil {
				d.emit(protocol.TypeGameOver, gameOverPayload(*res.Winner))
			} else {
				renderWinner(d.game, *res.Winner)
			}
			return nil
		}

		if d.transcript == nil {
			if _, err := d.read("Press enter to deal the next match"); err != nil {
				return quietQuit(err)
			}
		}
		if err := d.game.NextMatch(); err != nil {
			return err
		}
	}
}

func (d *driver) playMatch() error {
	for {
		if _, over := d.game.IsMatchOver(); over {
			return nil
		}
		c := d.game.ColorPlaying()
		if d.transcript == nil {
			renderTurn(d.game)
		}

		line, err := d.read(fmt.Sprintf("%s, your move", d.game.Team(c).Name))
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "quit", "q":
			return errQuit
		}

		mv, err := d.game.MakeMove(line)
		if err != nil {
			var me *game.MoveError
			if !errors.As(err, &me) {
				return err
			}
			if d.transcript != nil {
				d.emit(protocol.TypeMoveRejected, moveRejectedPayload(c, line, me))
			} else {
				renderRejected(me)
			}
			continue
		}

		if d.transcript != nil {
			d.emit(protocol.TypeMovePlayed, movePlayedPayload(d.game, c, line, mv))
		} else {
			renderMove(d.game, c, mv)
		}
		if _, over := d.game.IsMatchOver(); over {
			return nil
		}
		d.game.ToggleTurn()
		d.sleep(d.cfg.SwitchDelay)
	}
}

func quietQuit(err error) error {
	if errors.Is(err, errQuit) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func newSession(cfg config.Config, logger *slog.Logger, opts ...game.Option) *game.Game {
	opts = append([]game.Option{
		game.WithLogger(logger),
		game.WithWinThreshold(cfg.WinThreshold),
		game.WithFirstColor(cfg.FirstColor),
		game.WithTeamNames(cfg.PurpleName, cfg.GreenName),
	}, opts...)
	return game.NewGame(opts...)
}

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flags := pflag.NewFlagSet("scopa", pflag.ExitOnError)
	cfg.RegisterFlags(flags)
	_ = flags.Parse(os.Args[1:])

	logger := newLogger(cfg)
	d := newDriver(newSession(cfg, logger), cfg, logger)
	if cfg.JSON {
		d.transcript = protocol.NewTranscript(os.Stdout)
		d.read = scannerLines(os.Stdin)
		d.cfg.SwitchDelay = 0
	} else {
		renderBanner()
		d.read = promptLines()
	}

	logger.Debug("configuration loaded",
		"win_threshold", cfg.WinThreshold,
		"switch_delay", cfg.SwitchDelay,
		"first", cfg.FirstColor.String(),
		"json", cfg.JSON)

	if err := d.run(); err != nil {
		logger.Error("scopa stopped", "error", err)
		os.Exit(1)
	}
}
