// Package topics contains the built-in rule-table builders.
// Import this package to register every topic via its init() function.
//
// The order below is part of the contract: later fragments override earlier
// ones, so core topics come before framework topics.
package topics

const (
	priorityJavascript = (iota + 1) * 10
	priorityComments
	priorityUnicorn
	priorityStylistic
	priorityJsdoc
	priorityJsonc
	priorityImports
	prioritySort
	priorityIgnores
	priorityNode
	priorityTypescript
	priorityReact
	priorityVue
	priorityNextjs
	priorityTailwindcss
)
