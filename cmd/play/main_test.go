package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

func TestPlay(t *testing.T) {
	t.Run("Hard bot is never beaten", func(t *testing.T) {
		// Given: a human who tries every cell in order
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
		input := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\n")

		// When: the game is played out
		err := play(input, out, entity.DifficultyHard, entity.PlayerO)

		// Then: it ends with a bot win or a draw
		require.NoError(t, err)
		text := buf.String()
		assert.NotContains(t, text, "You win!")
		assert.True(t, strings.Contains(text, "You lose.") || strings.Contains(text, "Draw."), text)
	})

	t.Run("Bot opens when it plays X", func(t *testing.T) {
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

		err := play(strings.NewReader(""), out, entity.DifficultyHard, entity.PlayerX)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Bot plays 1")
	})

	t.Run("Bad input is reported", func(t *testing.T) {
		var buf bytes.Buffer
		out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))

		err := play(strings.NewReader("abc\n10\n"), out, entity.DifficultyEasy, entity.PlayerO)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "enter a number from 1 to 9")
		assert.Contains(t, buf.String(), entity.ErrInvalidCell.Error())
	})
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr error
	}{
		{
			name: "Defaults to an easy bot on O",
			args: nil,
			want: options{difficulty: entity.DifficultyEasy, botMark: entity.PlayerO},
		},
		{
			name: "Explicit level and mark",
			args: []string{"-difficulty", "hard", "-bot", "x"},
			want: options{difficulty: entity.DifficultyHard, botMark: entity.PlayerX},
		},
		{
			name:    "Unknown bot mark",
			args:    []string{"-bot", "Z"},
			wantErr: entity.ErrInvalidMark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags(tt.args)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
