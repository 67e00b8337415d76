package shell

import "strings"

// Command is one tokenized input line.
type Command struct {
	Name string
	Args []string
}

// Tokenize splits line on whitespace. The first token is the command name
// and the rest are its arguments. ok is false for a blank line.
func Tokenize(line string) (cmd Command, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, false
	}
	return Command{Name: fields[0], Args: fields[1:]}, true
}
