// Package main implements aoc-kickoff, a CLI that sets up the day's Advent
// of Code puzzle in one go.
//
// # Steps
//
//   - Scaffold a solution stub for today (default: cargo scaffold N)
//   - Download the puzzle input (default: cargo download N)
//   - Open the editor in the current directory (default: code .)
//   - Open the puzzle page in the default browser
//
// Each command is echoed as "> command" before it runs. The first command
// that exits non-zero stops the run with exit status 1. Opening the browser
// is best effort and never fails the run.
//
// # Usage
//
//	aoc-kickoff [--config PATH] [--day N] [--dry-run] [--check]
//
// # Configuration
//
// Configuration is loaded from aoc-kickoff.json in the current directory or
// the directory named by AOC_KICKOFF_HOME, then overridden by AOC_* variables.
// A .env file in the working directory is loaded first.
package main
