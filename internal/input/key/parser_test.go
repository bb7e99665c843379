package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Combination
	}{
		{"<C-b>", Combination{HoldCtrl, KeyB}},
		{"<Esc>", Combination{KeyEsc}},
		{"<C-Tab>", Combination{HoldCtrl, KeyTab}},
		{"<C-a>g", Combination{HoldCtrl, KeyA, KeyG}},
		{"gg", Combination{KeyG, KeyG}},
		{"<Space>x", Combination{KeySpace, KeyX}},
		{"g<Esc>", Combination{KeyG, KeyEsc}},
		{"zz", Combination{KeyZ, KeyZ}},
		{"k", Combination{KeyK}},
		{"G", Combination{HoldShift, KeyG}},
		{"gT", Combination{KeyG, HoldShift, KeyT}},
		{"<CR>", Combination{KeyEnter}},
		{"<Return>", Combination{KeyEnter}},
		{"<M-x>", Combination{HoldAlt, KeyX}},
		{"<S-C-a>", Combination{HoldCtrl, HoldShift, KeyA}},
		{"<S-A-C-F5>", Combination{HoldCtrl, HoldAlt, HoldShift, KeyF5}},
		{"<C-C-a>", Combination{HoldCtrl, KeyA}},
		{"<PageDown><BS>", Combination{KeyPageDown, KeyBackspace}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmptyBinding},
		{"   ", ErrEmptyBinding},
		{"<C-<a>", ErrSyntax},
		{"<C-a", ErrSyntax},
		{"a>", ErrSyntax},
		{"a-b", ErrSyntax},
		{"<>", ErrSyntax},
		{"<C->", ErrSyntax},
		{"<C>", ErrSyntax},
		{"<a-C>", ErrSyntax},
		{"<Foo>", ErrUnknownKey},
		{"<C-A>", ErrSyntax},
		{"<G>", ErrUnknownKey},
		{"1", ErrUnknownKey},
		{"g:", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<C-b>", "<C-b>"},
		{"<Esc>", "<Esc>"},
		{"<C-a>g", "<C-a>g"},
		{"gg", "gg"},
		{"<Space>x", "<Space>x"},
		{"g<Esc>", "g<Esc>"},
		{"G", "<S-g>"},
		{"<CR>", "<Enter>"},
		{"<Return>", "<Enter>"},
		{"<M-x>", "<A-x>"},
		{"<S-C-a>", "<C-S-a>"},
		{"<BS>", "<BS>"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	specs := []string{"<C-b>", "<Esc>", "<C-Tab>", "<C-a>g", "gg", "<Space>x", "g<Esc>", "gT", "<A-S-F12>"}

	for _, spec := range specs {
		c := MustParse(spec)
		again, err := Parse(Format(c))
		require.NoError(t, err, spec)
		assert.True(t, c.Equal(again), "round trip of %q gave %v", spec, again)
	}
}

func TestFormatDanglingModifiers(t *testing.T) {
	assert.Equal(t, "g<C-S>", Format(Combination{KeyG, HoldCtrl, HoldShift}))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("<oops") })
}
