package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"q", Quit{}},
		{"quit", Quit{}},
		{"qa", Quit{All: true}},
		{"quitall", Quit{All: true}},
		{"s", Save{}},
		{"save", Save{}},
		{"set nu", SetBool{Action: Enable, Option: Number}},
		{"se number", SetBool{Action: Enable, Option: Number}},
		{"set nonu", SetBool{Action: Disable, Option: Number}},
		{"set nonumber", SetBool{Action: Disable, Option: Number}},
		{"set nu!", SetBool{Action: Toggle, Option: Number}},
		{"set rnu", SetBool{Action: Enable, Option: RelativeNumber}},
		{"set norelativenumber", SetBool{Action: Disable, Option: RelativeNumber}},
		{"set relativenumber!", SetBool{Action: Toggle, Option: RelativeNumber}},
		{"set history_size=20", SetHistorySize{Size: 20}},
		{"set history_size 7", SetHistorySize{Size: 7}},
		{"set   nu", SetBool{Action: Enable, Option: Number}},
		{"  q  ", Quit{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"quitx",
		"set",
		"setnu",
		"set foo",
		"set nonu!",
		"set history_size",
		"set history_size=abc",
		"set nu extra",
		"Q",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			require.Error(t, err)

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Equal(t, input, parseErr.Input)
		})
	}
}

func TestOptionString(t *testing.T) {
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "relativenumber", RelativeNumber.String())
	assert.Equal(t, "unknown", Option(9).String())
}
