// Package execshell provides structured helpers for invoking external tools.
//
// OSCommandRunner spawns processes with os/exec, capturing their output and
// separating spawn failures from wait failures. ShellExecutor layers zap
// logging and CommandEventObserver notifications on top of any CommandRunner,
// so repository checks can run git in a testable manner.
package execshell
