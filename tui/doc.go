// Package tui is the terminal front end of gridastar: it draws a
// gridgraph.Grid and the marks of the last astar search with tcell, and turns
// mouse clicks and key presses into grid edits and searches.
//
// Controls:
//
//	left click    place Start, then End, then walls
//	right click   erase the cell (and its Start/End role)
//	space         run A* from Start to End, animated
//	c             clear the grid
//	r             scatter random walls
//	q, Esc, ^C    quit (also stops a running search)
//
// The package only maps states and marks to colours and routes input; all
// path finding happens in package astar.
package tui
