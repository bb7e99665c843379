// Package command dispatches command lines to application operations.
//
// A command line is a verb followed by whitespace-separated arguments,
// as typed after ':' in the palette or produced by a key binding:
//
//	app_quit
//	scroll_up | scroll_down
//	switch_page <index>
//	next_page | prev_page
//
// Commands act on a Target, the interface the application satisfies, and
// report whether the input loop should quit.
package command
