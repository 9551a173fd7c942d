// Package ui renders git probe activity as readable console lines.
//
// With a console log format the scanner attaches ConsoleCommandEventLogger to the shell
// executor, so each probe is traced as "Comparing staged changes with HEAD in <repo>" and
// similar lines on standard error while findings stay on standard output.
package ui
