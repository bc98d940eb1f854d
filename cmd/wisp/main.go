/*
File    : wisp/cmd/wisp/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the wisp interpreter. It provides
three modes of operation:
 1. REPL Mode (default): interactive Read-Eval-Print Loop
 2. File Mode: execute a wisp source file given on the command line
 3. Server Mode: start a REPL for each client of a TCP port

All modes are thin drivers over the lexer/parser/eval core; the REPL
and CLI argument parsing are external collaborators of the core, not
part of it.
*/
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/wisp-lang/wisp/eval"
	"github.com/wisp-lang/wisp/parser"
	"github.com/wisp-lang/wisp/repl"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENCE = "MIT"
	PROMPT  = "wisp >>> "

	BANNER = `
 █     █░ ██▓  ██████  ██▓███
▓█░ █ ░█░▓██▒▒██    ▒ ▓██░  ██▒
▒█░ █ ░█ ▒██▒░ ▓██▄   ▓██░ ██▓▒
░█░ █ ░█ ░██░  ▒   ██▒▒██▄█▓▒ ▒
░░██▒██▓ ░██░▒██████▒▒▒██▒ ░  ░
░ ▓░▒ ▒  ░▓  ▒ ▒▓▒ ▒ ░▒▓▒░ ░  ░
  ▒ ░ ░   ▒ ░░ ░▒  ░ ░░▒ ░
  ░   ░   ▒ ░░  ░  ░  ░░
    ░     ░        ░
`

	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on argv:
//
//	wisp                  - start the REPL
//	wisp <path>           - run a source file
//	wisp server <port>    - start a REPL server on a TCP port
//	wisp --help / -h      - print usage
//	wisp --version / -v   - print version info
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			return
		case "--version", "-v":
			showVersion()
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: wisp server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("wisp - a small expression-oriented scripting language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  wisp                      Start interactive REPL mode")
	yellowColor.Println("  wisp <path-to-file>       Execute a wisp file")
	yellowColor.Println("  wisp server <port>        Start a REPL server on the given port")
	yellowColor.Println("  wisp --help               Display this help message")
	yellowColor.Println("  wisp --version            Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

func showVersion() {
	cyanColor.Println("wisp - a small expression-oriented scripting language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a wisp source file, exiting with a
// non-zero status on any file, parse, or eval error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

// startServer listens on port, handing each accepted TCP connection
// to its own REPL instance running on its own goroutine.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("wisp REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates source, printing the
// final value (if any) or the first error encountered. A panic in
// parsing or evaluation is reported the same way a normal error would
// be, rather than crashing the process.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	output, runErr := runSource(source)
	if runErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(1)
	}
	if output != "" {
		yellowColor.Fprintf(os.Stdout, "%s\n", output)
	}
}

// runSource parses and evaluates source against a fresh Evaluator,
// returning the result's Inspect() text (empty for a program with no
// final value) or the first parse/eval error encountered. It is the
// pure core executeFileWithRecovery wraps with process-exit and
// terminal-coloring concerns, kept separate so it can be exercised
// directly in tests.
func runSource(source string) (string, error) {
	p := parser.New(source)
	program, chains := p.ParseProgram()
	if len(chains) > 0 {
		return "", chains[0]
	}

	evaluator := eval.New()
	result, evalErr := evaluator.Eval(program)
	if evalErr != nil {
		return "", evalErr
	}
	if result == nil {
		return "", nil
	}
	return result.Inspect(), nil
}
