// Package tui implements the widget tree: the App root, listing pages of
// posts, the page bar and the command palette.
//
// Every widget owns a plane created as a child of its parent's plane, so
// destroying the App plane tears down the whole tree. The palette's
// reader is the exception and must be released first; App.Close does
// this in order.
//
// Widgets only draw into planes. App.Render is the single place that
// takes the terminal Handle to flush the composed tree.
package tui
