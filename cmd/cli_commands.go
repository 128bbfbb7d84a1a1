package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/fzft/go-openset/hashset"
)

// commandDocs describes one shell command. maxArgs < 0 means no upper
// bound.
type commandDocs struct {
	name    string
	params  string
	summary string
	minArgs int
	maxArgs int
	proc    func(sh *Shell, args []string) (reply, error)
}

var commandTable map[string]*commandDocs

func init() {
	commandTable = make(map[string]*commandDocs)
	for _, c := range []*commandDocs{
		{"ADD", "element [element ...]", "Add elements, reply with how many were new", 1, -1, addCommand},
		{"REM", "element [element ...]", "Remove elements, reply with how many were present", 1, -1, remCommand},
		{"HAS", "element", "Reply 1 if the element is present", 1, 1, hasCommand},
		{"SIZE", "", "Number of live elements", 0, 0, sizeCommand},
		{"LIST", "", "All elements in slot order", 0, 0, listCommand},
		{"STATS", "", "Capacity, size, tombstones and load factor", 0, 0, statsCommand},
		{"ITER", "", "Start a new iterator", 0, 0, iterCommand},
		{"HASNEXT", "", "Reply 1 if the iterator has more elements", 0, 0, hasNextCommand},
		{"NEXT", "", "Advance the iterator", 0, 0, nextCommand},
		{"DELCUR", "", "Remove the element last returned by NEXT", 0, 0, delCurCommand},
		{"CLEAR", "", "Remove every element (slots stay tombstoned)", 0, 0, clearCommand},
		{"RESET", "[bits]", "Replace the set with an empty one", 0, 1, resetCommand},
		{"HELP", "[command]", "Show help", 0, 1, helpCommand},
		{"QUIT", "", "Leave the shell", 0, 0, nil},
	} {
		commandTable[c.name] = c
	}
}

// commandNames is used for tab completion.
func commandNames() []string {
	names := make([]string, 0, len(commandTable))
	for name := range commandTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *commandDocs) checkArity(args []string) error {
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		return fmt.Errorf("%w for '%s'", ErrWrongArity, strings.ToLower(c.name))
	}
	return nil
}

func addCommand(sh *Shell, args []string) (reply, error) {
	added := 0
	for _, e := range args {
		ok, err := sh.set.Add(e)
		if err != nil {
			return reply{}, fmt.Errorf("%d added before failure: %w", added, err)
		}
		if ok {
			added++
		}
	}
	return intReply(added), nil
}

func remCommand(sh *Shell, args []string) (reply, error) {
	removed := 0
	for _, e := range args {
		if sh.set.Remove(e) {
			removed++
		}
	}
	return intReply(removed), nil
}

func hasCommand(sh *Shell, args []string) (reply, error) {
	return boolReply(sh.set.Contains(args[0])), nil
}

func sizeCommand(sh *Shell, _ []string) (reply, error) {
	return intReply(sh.set.Size()), nil
}

func listCommand(sh *Shell, _ []string) (reply, error) {
	return listReply(sh.set.Slice()), nil
}

func statsCommand(sh *Shell, _ []string) (reply, error) {
	s := sh.set
	return listReply([]string{
		"bits:" + strconv.Itoa(s.Bits()),
		"capacity:" + strconv.Itoa(s.Capacity()),
		"size:" + strconv.Itoa(s.Size()),
		"tombstones:" + strconv.Itoa(s.Tombstones()),
		"load_factor:" + strconv.FormatFloat(s.LoadFactor(), 'f', 4, 64),
	}), nil
}

func iterCommand(sh *Shell, _ []string) (reply, error) {
	sh.it = sh.set.Iterator()
	return statusReply("OK"), nil
}

func hasNextCommand(sh *Shell, _ []string) (reply, error) {
	if sh.it == nil {
		return reply{}, ErrNoIterator
	}
	return boolReply(sh.it.HasNext()), nil
}

func nextCommand(sh *Shell, _ []string) (reply, error) {
	if sh.it == nil {
		return reply{}, ErrNoIterator
	}
	e, err := sh.it.Next()
	if err != nil {
		return reply{}, err
	}
	return bulkReply(e), nil
}

func delCurCommand(sh *Shell, _ []string) (reply, error) {
	if sh.it == nil {
		return reply{}, ErrNoIterator
	}
	if err := sh.it.Remove(); err != nil {
		return reply{}, err
	}
	return statusReply("OK"), nil
}

func clearCommand(sh *Shell, _ []string) (reply, error) {
	sh.set.Clear()
	sh.it = nil
	return statusReply("OK"), nil
}

func resetCommand(sh *Shell, args []string) (reply, error) {
	bits := sh.bits
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return reply{}, fmt.Errorf("bits %q is not an integer", args[0])
		}
		bits = n
	}

	set, err := hashset.New[string](bits, hashset.WithLogger[string](sh.logger))
	if err != nil {
		return reply{}, err
	}
	sh.set, sh.bits, sh.it = set, bits, nil
	return statusReply("OK"), nil
}

func helpCommand(_ *Shell, args []string) (reply, error) {
	if len(args) > 0 {
		c, ok := commandTable[strings.ToUpper(args[0])]
		if !ok {
			return reply{}, fmt.Errorf("%w '%s'", ErrUnknownCommand, args[0])
		}
		return statusReply(c.usage()), nil
	}

	lines := make([]string, 0, len(commandTable))
	for _, name := range commandNames() {
		lines = append(lines, commandTable[name].usage())
	}
	return statusReply(strings.Join(lines, "\n")), nil
}

func (c *commandDocs) usage() string {
	head := c.name
	if c.params != "" {
		head += " " + c.params
	}
	return fmt.Sprintf("%-28s %s", head, c.summary)
}
