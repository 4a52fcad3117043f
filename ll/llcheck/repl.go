package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/predict/ll/bnf"
	"github.com/pterm/pterm"
)

// session is an interactive grammar editing session.
type session struct {
	rules []string    // rule text entered so far
	cache reportCache // reports by grammar fingerprint
	last  *report     // result of the latest check
}

func newSession() *session {
	return &session{cache: make(reportCache)}
}

func runREPL() error {
	repl, err := readline.New("llcheck> ")
	if err != nil {
		tracer().Errorf("%v", err)
		return err
	}
	defer repl.Close()
	pterm.Info.Println("Enter rules, e.g. 'S -> a S | ε ;', and ':check' to check them")
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	s := newSession()
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := s.eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// eval evaluates a line of input, which is either a command or
// (part of) a rule.
func (s *session) eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		s.rules = append(s.rules, line)
		return false, nil
	}
	switch cmd := strings.Fields(line)[0]; cmd {
	case ":quit", ":q":
		return true, nil
	case ":reset":
		s.rules = nil
		s.last = nil
		pterm.Info.Println("Grammar cleared")
	case ":check":
		r := s.check()
		display(r, options{})
	case ":show":
		if s.last == nil || s.last.g == nil {
			return false, fmt.Errorf("no grammar checked yet, use :check")
		}
		display(s.last, options{sets: true, table: true})
	case ":rules":
		for _, rule := range s.rules {
			pterm.Println(rule)
		}
	case ":help":
		pterm.Info.Println(":check  check the grammar entered so far")
		pterm.Info.Println(":show   show sets and parse table of the latest check")
		pterm.Info.Println(":rules  list the rules entered so far")
		pterm.Info.Println(":reset  start a new grammar")
		pterm.Info.Println(":quit   end the session")
	default:
		return false, fmt.Errorf("unknown command %s, try :help", cmd)
	}
	return false, nil
}

// check reads and analyses the rules entered so far. Analysis is skipped if
// the grammar has been checked before.
func (s *session) check() *report {
	g, err := bnf.ReadString("repl", strings.Join(s.rules, "\n"))
	s.last = analyse("repl", g, err, s.cache)
	return s.last
}
