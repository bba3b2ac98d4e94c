// Package query runs calls into external subsystems that are known to hang
// under a hard wall-clock deadline.
//
// The call runs on its own goroutine. When the deadline passes the runner
// cancels the context given to the call, which kills any child process
// started with exec.CommandContext, and returns ErrQueryTimedOut without
// waiting. Go cannot stop a goroutine that is blocked inside foreign code, so
// an abandoned worker may keep running in the background; whatever it
// eventually produces is dropped and never merged into a result.
package query
