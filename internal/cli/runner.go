// Package cli dispatches the subcommands and owns everything printed
// to the terminal outside the interactive screen.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tudu/internal/model"
	"tudu/internal/store"
	"tudu/internal/tui"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Options carry the wired dependencies into Run.
type Options struct {
	Store  *store.Store
	Logger *log.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage). No subcommand opens the interactive screen.
func Run(ctx context.Context, args []string, opt Options) int {
	if len(args) == 0 {
		return runUI(ctx, opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return runUI(ctx, opt)

	case "ls":
		return runList(opt)

	case "add":
		return runAdd(a, opt)

	case "rm":
		if len(a) != 1 {
			fail("usage: tudu rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			fail("rm: not a number: " + a[0])
			return 2
		}
		return runRemove(n, opt)

	case "version", "-v", "--version":
		fmt.Println("tudu " + Version)
		return 0
	}

	fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`tudu - a todo list for the terminal

Usage:
  tudu [flags] [subcommand] [args]

Subcommands:
  (none), ui         Open the interactive screen
  add <name...>      Add a todo; -category and -text set the other fields
  ls                 List todos
  rm <index>         Remove the todo at 1-based index
  version            Print the version
  help               Show this help

Flags (before the subcommand):
  -data-path <file>  Where todos are stored (default ./data.json)
  -log-file <file>   Diagnostic log destination (default: disabled)
  -log-level <lvl>   debug, info, warn, error or fatal

Examples:
  tudu add Buy milk -category shopping -text "two bottles"
  tudu ls
  tudu rm 2
`)
}

// -------------- subcommand impls ----------------

func runUI(ctx context.Context, opt Options) int {
	if !isTTY() {
		fail("ui requires a terminal")
		return 1
	}
	if err := tui.Run(ctx, opt.Store, opt.Logger); err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		opt.Logger.Error("ui", "err", err)
		fail(err.Error())
		return 1
	}
	return 0
}

// runAdd accepts the name first and flags after it, so
// `tudu add Buy milk -category shopping` reads naturally.
func runAdd(args []string, opt Options) int {
	var nameParts []string
	rest := args
	for len(rest) > 0 && !strings.HasPrefix(rest[0], "-") {
		nameParts = append(nameParts, rest[0])
		rest = rest[1:]
	}

	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	category := fs.String("category", "", "category for the todo")
	text := fs.String("text", "", "free text for the todo")
	if err := fs.Parse(rest); err != nil {
		return 2
	}
	name := strings.TrimSpace(strings.Join(append(nameParts, fs.Args()...), " "))
	if name == "" {
		fail("usage: tudu add <name...> [-category <category>] [-text <text>]")
		return 2
	}

	// Load first so a fresh directory gets its storage file before the
	// strict append.
	if _, err := opt.Store.Load(); err != nil {
		opt.Logger.Error("load todos", "err", err)
		fail("load: " + err.Error())
		return 1
	}
	item := model.New(name, *category, *text)
	if _, err := opt.Store.Append(item); err != nil {
		opt.Logger.Error("append todo", "err", err)
		fail("save: " + err.Error())
		return 1
	}
	ok("added")
	return 0
}

func runList(opt Options) int {
	todos, err := opt.Store.Load()
	if err != nil {
		opt.Logger.Error("load todos", "err", err)
		fail("load: " + err.Error())
		return 1
	}
	if len(todos) == 0 {
		fmt.Println(mutedStyle.Render("no todos"))
		fmt.Println(mutedStyle.Render("Tip: add with `tudu add Buy milk`"))
		return 0
	}

	title := color.New(color.Bold, color.Underline)
	title.Fprintf(color.Output, "TODOs (%d)\n", len(todos))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 50
	tbl.AddRow("#", "ID", "NAME", "CATEGORY", "TEXT", "CREATED")
	for i, td := range todos {
		tbl.AddRow(strconv.Itoa(i+1), strconv.Itoa(td.ID), td.Name, td.Category,
			td.Text, td.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(color.Output, tbl)
	return 0
}

func runRemove(userIndex int, opt Options) int {
	if err := opt.Store.RemoveAt(userIndex - 1); err != nil {
		if errors.Is(err, store.ErrOutOfRange) {
			fail(fmt.Sprintf("no todo at index %d", userIndex))
			fmt.Fprintln(os.Stderr, mutedStyle.Render("Hint: run `tudu ls` to see valid indexes"))
			return 2
		}
		opt.Logger.Error("remove todo", "err", err)
		fail("save: " + err.Error())
		return 1
	}
	ok("removed")
	return 0
}

// -------------- output helpers --------------

func ok(msg string) {
	fmt.Println(successStyle.Render("✔ " + msg))
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+msg))
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
