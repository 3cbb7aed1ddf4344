package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"justdep/interpreter-go/pkg/ast"
	"justdep/interpreter-go/pkg/driver"
	"justdep/interpreter-go/pkg/interpreter"
	"justdep/interpreter-go/pkg/parser"
	"justdep/interpreter-go/pkg/typechecker"
)

const (
	historyFile = ".justdep_history"
	promptMain  = "jd> "
	promptCont  = "... "
)

const replHelp = `REPL input:
  name (arg : type) ... : ret = body;   add a declaration to the session
  expr                                  type-check and evaluate an expression
Commands:
  :list    show session declarations
  :reset   drop all session declarations
  :quit    exit`

// replSession accumulates declaration sources. Every accepted declaration
// has already survived a full combine + check of the whole session.
type replSession struct {
	decls []string
}

func (s *replSession) source() string {
	return strings.Join(s.decls, "\n")
}

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "justdep repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}
	fmt.Println("justdep REPL. Declarations end with ';'. Type :quit to exit.")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := &replSession{}
	for {
		input, ok := readInput(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if strings.HasPrefix(input, ":") {
			switch input {
			case ":quit":
				return 0
			case ":help":
				fmt.Println(replHelp)
			case ":list":
				if len(session.decls) == 0 {
					fmt.Println("(no declarations)")
					break
				}
				for _, d := range session.decls {
					fmt.Println(d)
				}
			case ":reset":
				session.decls = nil
			default:
				fmt.Println("unknown command; type :help")
			}
			continue
		}
		evalInput(session, input)
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))
	}
}

// readInput keeps prompting while the accumulated text is a valid prefix of
// a declaration or an expression, so multi-line input works.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := strings.TrimSpace(b.String())
		if src == "" || strings.HasPrefix(src, ":") {
			return src, true
		}
		if inputComplete(src) {
			return src, true
		}
	}
}

// historyPath locates the per-user history file. History is skipped entirely
// when the home directory cannot be resolved.
func historyPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	return filepath.Join(home, historyFile), true
}

// inputComplete reports whether accumulated input should be released to
// evaluation: it parses as a declaration script or as an expression, or it
// fails in a way more input cannot repair. A bare identifier is a valid
// prefix of a declaration, so the declaration parse alone cannot decide.
func inputComplete(src string) bool {
	_, declErr := parser.Parse(src)
	if declErr == nil {
		return true
	}
	_, exprErr := parser.ParseExpr(src)
	if exprErr == nil {
		return true
	}
	return !parser.IsIncomplete(declErr) && !parser.IsIncomplete(exprErr)
}

func evalInput(session *replSession, input string) {
	if script, err := parser.Parse(input); err == nil {
		extended := append(append([]string{}, session.decls...), input)
		program, err := driver.LoadProgramSource(strings.Join(extended, "\n"))
		if err == nil {
			err = driver.CheckProgram(program)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		session.decls = extended
		for _, d := range script.Decls {
			fmt.Printf("defined %s\n", d.Name)
		}
		return
	}

	expr, exprErr := parser.ParseExpr(input)
	if exprErr != nil {
		fmt.Fprintln(os.Stderr, exprErr)
		return
	}
	program, err := driver.LoadProgramSource(session.source())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	checker := typechecker.New()
	if err := checker.CheckProgram(program); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	exprType, err := checker.InferExpr(expr, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	value, err := interpreter.New(program).EvalExpr(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Printf("%s : %s\n", value.Render(), ast.String(exprType))
}
