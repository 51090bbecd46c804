package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/govalues/radix/internal/calc"
)

const replHelpMessage = `
Enter expressions in prefix notation to evaluate them, for example "* 25 41".
Operands are read in the working radix, a suffix selects another radix: FF_16.
Commands are prefixed with a dot. Valid commands are:

.exit     Exit the calculator
.help     Print this help message
.radix N  Set the working radix to N (2 to 36)
.frac N   Set the fraction bound to N digits

Press ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

type repl struct {
	eval       *calc.Evaluator
	paint      painter
	out        io.Writer
	lineNumber int
}

func newREPL(eval *calc.Evaluator, paint painter, out io.Writer) *repl {
	return &repl{
		eval:       eval,
		paint:      paint,
		out:        out,
		lineNumber: 1,
	}
}

func (r *repl) run() {
	r.printWelcome()
	executor := func(line string) {
		if r.handleLine(line) {
			os.Exit(0)
		}
	}
	options := []prompt.Option{
		prompt.OptionLivePrefix(r.livePrefix),
		prompt.OptionTitle("radixcalc"),
	}
	prompt.New(executor, r.suggest, options...).Run()
}

// handleLine evaluates a line of input and reports whether the session is over.
func (r *repl) handleLine(line string) bool {
	defer func() {
		r.lineNumber++
	}()

	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, "."):
		return r.handleCommand(line)
	}

	d, err := r.eval.Evaluate(line)
	if err != nil {
		fmt.Fprintln(r.out, r.paint.failure(err.Error()))
		return false
	}
	fmt.Fprintln(r.out, r.paint.result(d))
	return false
}

func (r *repl) handleCommand(line string) bool {
	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	switch {
	case command == ".exit" && len(args) == 0:
		return true
	case command == ".help" && len(args) == 0:
		fmt.Fprintln(r.out, replHelpMessage)
	case command == ".radix" && len(args) == 1:
		r.applySetting(args[0], r.eval.SetRadix)
	case command == ".frac" && len(args) == 1:
		r.applySetting(args[0], r.eval.SetMaxFracLen)
	default:
		fmt.Fprintln(r.out, r.paint.failure(fmt.Sprintf("Unknown command. %s", replAssistanceMessage)))
	}
	return false
}

func (r *repl) applySetting(arg string, set func(int) error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Fprintln(r.out, r.paint.failure(fmt.Sprintf("%q is not an integer", arg)))
		return
	}
	if err := set(n); err != nil {
		fmt.Fprintln(r.out, r.paint.failure(err.Error()))
	}
}

func (r *repl) suggest(d prompt.Document) []prompt.Suggest {
	word := d.GetWordBeforeCursor()
	if len(word) == 0 {
		return nil
	}

	suggests := []prompt.Suggest{
		{Text: ".exit", Description: "Exit the calculator"},
		{Text: ".help", Description: "Print the help message"},
		{Text: ".radix", Description: "Set the working radix"},
		{Text: ".frac", Description: "Set the fraction bound"},
	}
	ops := make([]string, 0, len(calc.Operators))
	for op := range calc.Operators {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	for _, op := range ops {
		suggests = append(suggests, prompt.Suggest{Text: op, Description: calc.Operators[op]})
	}

	return prompt.FilterHasPrefix(suggests, word, false)
}

func (r *repl) livePrefix() (string, bool) {
	return fmt.Sprintf("%d [radix %d]> ", r.lineNumber, r.eval.Radix()), true
}

func (r *repl) printWelcome() {
	fmt.Fprintf(r.out, "Welcome to radixcalc %s!\n%s\n\n", version, replAssistanceMessage)
}
