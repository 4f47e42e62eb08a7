package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/service"
)

// main - plays one game against the bot in the terminal.
func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	output := termenv.NewOutput(os.Stdout)
	if err = play(os.Stdin, output, opts.difficulty, opts.botMark); err != nil {
		fmt.Fprintf(os.Stderr, "game failed: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	difficulty entity.Difficulty
	botMark    entity.Mark
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	difficulty := fs.String("difficulty", string(entity.DifficultyEasy), "bot level: easy, medium or hard")
	botFlag := fs.String("bot", string(entity.PlayerO), "mark played by the bot: X or O")

	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("failed to parse flags: %w", err)
	}

	botMark, err := entity.ParseMark(*botFlag, entity.PlayerO)
	if err != nil {
		return options{}, fmt.Errorf("invalid -bot: %w", err)
	}

	return options{
		difficulty: entity.ParseDifficulty(*difficulty),
		botMark:    botMark,
	}, nil
}

func play(in io.Reader, out *termenv.Output, difficulty entity.Difficulty, botMark entity.Mark) error {
	game := entity.NewGame("local", difficulty)
	game.Start(botMark.Opponent())

	bot := service.NewBotService()
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "You play %s against the %s bot.\n", paint(out, game.PlayerMark), difficulty)

	for !game.IsFinished() {
		if game.IsBotTurn() {
			cell, err := bot.MakeTurn(game)
			if err != nil {
				return fmt.Errorf("bot failed to move: %w", err)
			}

			fmt.Fprintf(out, "Bot plays %d\n", cell+1)
			continue
		}

		render(out, &game.Board)
		fmt.Fprint(out, "Your move (1-9): ")

		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err() //nolint: wrapcheck // nil on EOF
		}

		cell, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			warn(out, "enter a number from 1 to 9")
			continue
		}

		if err = game.MakeTurn(game.PlayerMark, cell-1); err != nil {
			warn(out, err.Error())
		}
	}

	render(out, &game.Board)

	switch game.Winner {
	case game.PlayerMark:
		fmt.Fprintln(out, out.String("You win!").Foreground(termenv.ANSIGreen).Bold())
	case game.BotMark:
		fmt.Fprintln(out, out.String("You lose.").Foreground(termenv.ANSIRed).Bold())
	default:
		fmt.Fprintln(out, out.String("Draw.").Bold())
	}

	return nil
}

func render(out *termenv.Output, board *entity.Board) {
	for row := 0; row < 3; row++ {
		cells := make([]string, 3)
		for col := range cells {
			idx := row*3 + col
			if board[idx] == entity.EmptyCell {
				cells[col] = out.String(strconv.Itoa(idx + 1)).Faint().String()
				continue
			}
			cells[col] = paint(out, board[idx])
		}

		fmt.Fprintf(out, " %s\n", strings.Join(cells, " | "))
		if row < 2 {
			fmt.Fprintln(out, "---+---+---")
		}
	}
}

func paint(out *termenv.Output, mark entity.Mark) string {
	color := termenv.ANSIBlue
	if mark == entity.PlayerX {
		color = termenv.ANSIYellow
	}

	return out.String(string(mark)).Foreground(color).Bold().String()
}

func warn(out *termenv.Output, msg string) {
	fmt.Fprintln(out, out.String(msg).Foreground(termenv.ANSIRed))
}
