package console

import (
	"strings"
)

type Command int

const (
	CmdNone Command = iota
	CmdGuess
	CmdHelp
	CmdPrint
	CmdQuit
	CmdRestart
	CmdSave
	CmdLoad
	CmdStats
)

var keywords = map[string]Command{
	"HELP":    CmdHelp,
	"PRINT":   CmdPrint,
	"QUIT":    CmdQuit,
	"EXIT":    CmdQuit,
	"RESTART": CmdRestart,
	"SAVE":    CmdSave,
	"LOAD":    CmdLoad,
	"STATS":   CmdStats,
}

// ParseCommand splits a line into a command and its argument. Keywords are
// case-insensitive; anything else is handed to the engine as a guess.
func ParseCommand(line string) (Command, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return CmdNone, ""
	}

	fields := strings.Fields(line)
	if cmd, ok := keywords[strings.ToUpper(fields[0])]; ok {
		return cmd, strings.Join(fields[1:], " ")
	}
	return CmdGuess, line
}
