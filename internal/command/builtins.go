package command

// Built-in verbs.
const (
	VerbAppQuit    = "app_quit"
	VerbScrollUp   = "scroll_up"
	VerbScrollDown = "scroll_down"
	VerbSwitchPage = "switch_page"
	VerbNextPage   = "next_page"
	VerbPrevPage   = "prev_page"
)

func builtins() []*Command {
	return []*Command{
		{
			Verb:        VerbAppQuit,
			Description: "Quit the application",
			Handler: func(Target, []any) (Result, error) {
				return ResultQuit, nil
			},
		},
		{
			Verb:        VerbScrollUp,
			Description: "Scroll the focused page up",
			Handler: func(t Target, _ []any) (Result, error) {
				t.ScrollUp()
				return ResultNone, t.Render()
			},
		},
		{
			Verb:        VerbScrollDown,
			Description: "Scroll the focused page down",
			Handler: func(t Target, _ []any) (Result, error) {
				t.ScrollDown()
				return ResultNone, t.Render()
			},
		},
		{
			Verb:        VerbSwitchPage,
			Description: "Focus the page at an index",
			Args:        []Arg{{Name: "index", Type: ArgUnsigned}},
			Handler: func(t Target, args []any) (Result, error) {
				t.SetFocPage(args[0].(int))
				return ResultNone, t.Render()
			},
		},
		{
			Verb:        VerbNextPage,
			Description: "Focus the next page",
			Handler: func(t Target, _ []any) (Result, error) {
				t.SwitchNextPage()
				return ResultNone, t.Render()
			},
		},
		{
			Verb:        VerbPrevPage,
			Description: "Focus the previous page",
			Handler: func(t Target, _ []any) (Result, error) {
				t.SwitchPrevPage()
				return ResultNone, t.Render()
			},
		},
	}
}
