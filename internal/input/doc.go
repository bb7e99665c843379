// Package input turns terminal keystrokes into application actions.
//
// # Modes
//
// Input is modal. In normal mode every decodable keystroke extends a
// pending key sequence, which is looked up in the binding trie (see
// package keymap) after each keystroke:
//
//   - no binding starts with the sequence: the sequence is dropped
//   - the sequence is a strict prefix of a binding: keep waiting
//   - the sequence is bound: run the bound command and start over
//
// There is no sequence timeout; a prefix waits until the next keystroke
// either completes or breaks it.
//
// Typing ':' in normal mode opens the command palette. In command mode
// printable characters, Left, Right and Backspace edit the line, Enter
// runs it and Esc abandons it. Both return to normal mode, as does
// deleting the ':' prompt.
//
// # Loop
//
// Listener.Listen is the main loop. It blocks on the terminal input
// source, reads one keystroke under the terminal guard and hands it to
// Handler.HandleInput. Handler has no terminal dependency of its own and
// is driven directly in tests.
//
// The loop ends when a command asks to quit, when the terminal stops or
// its input closes, or when the context is cancelled. Errors confined to
// one keystroke, such as an unknown command or a bad argument, are
// logged and the loop continues.
package input
