package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/quark-lang/quark/backend"
	"github.com/quark-lang/quark/feedback"
	"github.com/quark-lang/quark/frontend"
	"github.com/quark-lang/quark/source"
	"github.com/urfave/cli"
)

// sourceExt is the extension every Quark source file must carry
const sourceExt = ".qk"

// targetExt is the extension of the emitted files
const targetExt = ".py"

var errorNoColor bool
var debugShowAST bool
var outputDir string
var writeStdout bool
var verbose bool

// options collects the command line flags for one run of the pipeline
type options struct {
	noColor  bool
	debugAST bool
	outDir   string
	stdout   bool
	logger   *log.Logger
}

func currentOptions() options {
	logOutput := ioutil.Discard
	if verbose {
		logOutput = os.Stderr
	}

	return options{
		noColor:  errorNoColor,
		debugAST: debugShowAST,
		outDir:   outputDir,
		stdout:   writeStdout,
		logger:   log.New(logOutput, "quark: ", log.Ltime),
	}
}

func readSourceFiles(args []string, stderr io.Writer) (files []*source.File, ok bool) {
	ok = true

	for _, arg := range args {
		// "-" reads a single program from standard input, everything else must
		// be a path to a file with the right extension
		if arg == "-" {
			file, err := source.Load(arg)
			if err != nil {
				fmt.Fprintln(stderr, err)
				ok = false
				continue
			}

			files = append(files, file)
			continue
		}

		abs, err := filepath.Abs(arg)
		if err != nil {
			fmt.Fprintf(stderr, "could not find '%s'\n", arg)
			ok = false
			continue
		}

		if path.Ext(abs) != sourceExt {
			fmt.Fprintf(stderr, "could not use '%s' with extension '%s'\n", abs, path.Ext(abs))
			ok = false
			continue
		}

		file, err := source.Load(abs)
		if err != nil {
			fmt.Fprintln(stderr, err)
			ok = false
			continue
		}

		files = append(files, file)
	}

	return files, ok
}

// digestFile parses and checks a single file. The returned program is nil when
// any of the returned messages is an error
func digestFile(file *source.File, opts options, stdout io.Writer) (prog *frontend.Program, msgs []feedback.Message) {
	opts.logger.Printf("parsing %s", file.Filename)

	prog, msg := frontend.Parse(file)
	if msg != nil {
		return nil, []feedback.Message{msg}
	}

	msgs = frontend.Check(file, prog)
	opts.logger.Printf("parsed %d declaration(s), %d warning(s)", len(prog.Declarations), len(msgs))

	// If the `debug-ast` flag is set, output an ASCII header an an S-expression
	// AST representation
	if opts.debugAST {
		fmt.Fprintln(stdout, "#######################")
		fmt.Fprintln(stdout, "##        AST        ##")
		fmt.Fprintln(stdout, "#######################")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, frontend.StringifyAST(prog))
		fmt.Fprintln(stdout)
	}

	return prog, msgs
}

// targetPath returns where the emitted code for a source file is written
func targetPath(filename string, outDir string) string {
	base := strings.TrimSuffix(filepath.Base(filename), sourceExt) + targetExt

	if outDir == "" {
		return filepath.Join(filepath.Dir(filename), base)
	}

	return filepath.Join(outDir, base)
}

// processFiles runs every file through the pipeline. When `emit` is false the
// files are only checked. It reports whether every file succeeded
func processFiles(args []string, opts options, emit bool, stdout, stderr io.Writer) bool {
	files, ok := readSourceFiles(args, stderr)

	for _, f := range files {
		prog, msgs := digestFile(f, opts, stdout)

		if len(msgs) > 0 {
			fmt.Fprintf(stderr, "# %s\n", f.Filename)

			for _, msg := range msgs {
				fmt.Fprintln(stderr, msg.Make(!opts.noColor))
			}
		}

		if prog == nil {
			ok = false
			continue
		}

		if !emit {
			continue
		}

		if err := emitFile(f, prog, opts, stdout); err != nil {
			fmt.Fprintln(stderr, err)
			ok = false
		}
	}

	return ok
}

// emitFile synthesises a parsed program and writes the result next to the
// source file, into the output directory, or to stdout
func emitFile(file *source.File, prog *frontend.Program, opts options, stdout io.Writer) error {
	out, err := backend.Synthesise(prog)
	if err != nil {
		return errors.Wrapf(err, "could not compile '%s'", file.Filename)
	}

	if opts.stdout || file.Filename == source.StdinName {
		_, err = io.WriteString(stdout, out)
		return errors.Wrap(err, "could not write output")
	}

	dest := targetPath(file.Filename, opts.outDir)
	opts.logger.Printf("writing %s", dest)

	if err := ioutil.WriteFile(dest, []byte(out), 0644); err != nil {
		return errors.Wrapf(err, "could not write '%s'", dest)
	}

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "quark"
	app.Usage = "compile Quark programs to Python"

	noColorFlag := cli.BoolFlag{
		Name:        "no-color",
		Usage:       "hide colors in error and warning messages",
		Destination: &errorNoColor,
	}

	debugAstFlag := cli.BoolFlag{
		Name:        "debug-ast",
		Usage:       "show a basic representation of the abstract-syntax-tree",
		Destination: &debugShowAST,
	}

	verboseFlag := cli.BoolFlag{
		Name:        "verbose",
		Usage:       "log each stage of the pipeline to stderr",
		Destination: &verbose,
	}

	outFlag := cli.StringFlag{
		Name:        "out, o",
		Usage:       "write compiled files into `DIR` instead of next to their source",
		Destination: &outputDir,
	}

	stdoutFlag := cli.BoolFlag{
		Name:        "stdout",
		Usage:       "print compiled code instead of writing files",
		Destination: &writeStdout,
	}

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Aliases:   []string{"b"},
			Usage:     "Compile file(s) to Python",
			ArgsUsage: "FILE.qk... (use - for stdin)",
			Flags: []cli.Flag{
				noColorFlag,
				debugAstFlag,
				verboseFlag,
				outFlag,
				stdoutFlag,
			},
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return cli.NewExitError("no input files", 2)
				}

				if !processFiles(c.Args(), currentOptions(), true, os.Stdout, os.Stderr) {
					return cli.NewExitError("", 1)
				}

				return nil
			},
		},
		{
			Name:      "check",
			Aliases:   []string{"c"},
			Usage:     "Check the syntax of file(s) without writing any output",
			ArgsUsage: "FILE.qk...",
			Flags: []cli.Flag{
				noColorFlag,
				debugAstFlag,
				verboseFlag,
			},
			Action: func(c *cli.Context) error {
				if !processFiles(c.Args(), currentOptions(), false, os.Stdout, os.Stderr) {
					return cli.NewExitError("", 1)
				}

				return nil
			},
		},
		{
			Name:  "repl",
			Usage: "Translate expressions and declarations interactively",
			Flags: []cli.Flag{
				noColorFlag,
				verboseFlag,
			},
			Action: func(c *cli.Context) error {
				return runRepl(currentOptions())
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
