package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
)

// Option structs for subcommands that have flags
type CompileOptions struct {
	CorpusPath string
}

type BrowseOptions struct {
	CorpusPath string
	SynsetPath string
	NoColor    bool
	Context    int
}

type LemmaOptions struct {
	CorpusPath string
	SynsetPath string
	NoColor    bool
	Context    int
}

type PairsOptions struct {
	CorpusPath   string
	SynsetPath   string
	MinLemmas    int
	MinInstances int
	MultiType    bool
	JSON         bool
	NoColor      bool
}

type DocOptions struct {
	CorpusPath string
	NoColor    bool
}

type SentenceOptions struct {
	CorpusPath string
	NoColor    bool
}

type StatOptions struct {
	CorpusPath string
}

func setupUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		_, _ = fmt.Fprintf(out, "Usage: %s COMMAND [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(out, "\nCommands:\n")
		_, _ = fmt.Fprintf(out, "  compile   parse tagfiles and save document snapshots\n")
		_, _ = fmt.Fprintf(out, "  browse    interactive corpus browser\n")
		_, _ = fmt.Fprintf(out, "  lemma     print all instances of a lemma in context\n")
		_, _ = fmt.Fprintf(out, "  pairs     basic type pair co-occurrence summary\n")
		_, _ = fmt.Fprintf(out, "  doc       print a document\n")
		_, _ = fmt.Fprintf(out, "  sentence  print one sentence with its token details\n")
		_, _ = fmt.Fprintf(out, "  stat      corpus statistics\n")
		_, _ = fmt.Fprintf(out, "  version   print version information\n")
		_, _ = fmt.Fprintf(out, "  help      show this help or the help of a command\n")
	}
}

// parseErrHandled funnels the shared flag error handling of all
// subcommands: print usage on help, report anything else.
func parseErrHandled(fs *flag.FlagSet, err error, ui UI) error {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(ui.Out)
		fs.Usage()
		return err
	}
	fs.SetOutput(ui.Err)
	fprintErr(ui.Err, err)
	fs.Usage()
	return err
}

func corpusPathVar(fs *flag.FlagSet, target *string) {
	fs.StringVar(target, "corpus-path", os.Getenv("SENSECOR_CORPUS_PATH"), "Path to snapshot directory or SQLite file")
	fs.StringVar(target, "c", os.Getenv("SENSECOR_CORPUS_PATH"), "alias for -corpus-path")
}

func synsetPathVar(fs *flag.FlagSet, target *string) {
	fs.StringVar(target, "synset-path", os.Getenv("SENSECOR_SYNSET_PATH"), "Path to the synset mapping file")
	fs.StringVar(target, "y", os.Getenv("SENSECOR_SYNSET_PATH"), "alias for -synset-path")
}

func parseMainArgs(args []string, ui UI) (string, []string, error) {
	fs := flag.NewFlagSet("sensecor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	setupUsage(fs)

	if err := fs.Parse(args); err != nil {
		return "", nil, parseErrHandled(fs, err, ui)
	}

	if fs.NArg() == 0 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return "", nil, errors.New("no command provided")
	}

	return fs.Arg(0), fs.Args()[1:], nil
}

func parseCompileArgs(args []string, ui UI) (CompileOptions, string, error) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts CompileOptions
	corpusPathVar(fs, &opts.CorpusPath)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s compile [options] TAGFILE_DIR\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Parse every tagfile in TAGFILE_DIR and save document snapshots\n")
		_, _ = fmt.Fprintf(fs.Output(), "  to -corpus-path (a directory for JSON files, or a .db file).\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseErrHandled(fs, err, ui)
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("compile requires exactly one tagfile directory")
	}
	if opts.CorpusPath == "" {
		return opts, "", errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, fs.Arg(0), nil
}

func parseBrowseArgs(args []string, ui UI) (BrowseOptions, error) {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts BrowseOptions
	corpusPathVar(fs, &opts.CorpusPath)
	synsetPathVar(fs, &opts.SynsetPath)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.IntVar(&opts.Context, "context", 0, "KWIC context width in characters")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s browse [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Browse the compiled corpus interactively.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseErrHandled(fs, err, ui)
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, nil
}

func parseLemmaArgs(args []string, ui UI) (LemmaOptions, string, error) {
	fs := flag.NewFlagSet("lemma", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts LemmaOptions
	corpusPathVar(fs, &opts.CorpusPath)
	synsetPathVar(fs, &opts.SynsetPath)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")
	fs.IntVar(&opts.Context, "context", 0, "KWIC context width in characters")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s lemma [options] LEMMA\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print every sense bearing instance of LEMMA in context.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseErrHandled(fs, err, ui)
	}

	if fs.NArg() != 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("lemma requires exactly one argument")
	}
	if opts.CorpusPath == "" {
		return opts, "", errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, fs.Arg(0), nil
}

func parsePairsArgs(args []string, ui UI) (PairsOptions, error) {
	fs := flag.NewFlagSet("pairs", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts PairsOptions
	corpusPathVar(fs, &opts.CorpusPath)
	synsetPathVar(fs, &opts.SynsetPath)
	fs.IntVar(&opts.MinLemmas, "min-lemmas", 1, "Only pairs with at least this many distinct lemmas")
	fs.IntVar(&opts.MinInstances, "min-instances", 1, "Only pairs with at least this many instances")
	fs.BoolVar(&opts.MultiType, "multi-type", false, "Pair basic type labels that carry more than one type")
	fs.BoolVar(&opts.JSON, "json", false, "Write the summary as JSON")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s pairs [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Summarize co-occurring basic type pairs across the corpus.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseErrHandled(fs, err, ui)
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, nil
}

func parseDocArgs(args []string, ui UI) (DocOptions, string, error) {
	fs := flag.NewFlagSet("doc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts DocOptions
	corpusPathVar(fs, &opts.CorpusPath)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s doc [options] [NAME]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print a document. Without NAME, list all document names.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", parseErrHandled(fs, err, ui)
	}

	if fs.NArg() > 1 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", errors.New("doc accepts at most one argument")
	}
	if opts.CorpusPath == "" {
		return opts, "", errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, fs.Arg(0), nil
}

func parseSentenceArgs(args []string, ui UI) (SentenceOptions, string, string, error) {
	fs := flag.NewFlagSet("sentence", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts SentenceOptions
	corpusPathVar(fs, &opts.CorpusPath)
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable ANSI colors")

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s sentence [options] NAME SID\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print sentence SID of document NAME, one line per token.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, "", "", parseErrHandled(fs, err, ui)
	}

	if fs.NArg() != 2 {
		fs.SetOutput(ui.Err)
		fs.Usage()
		return opts, "", "", errors.New("sentence requires a document name and a sentence id")
	}
	if opts.CorpusPath == "" {
		return opts, "", "", errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, fs.Arg(0), fs.Arg(1), nil
}

func parseStatArgs(args []string, ui UI) (StatOptions, error) {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts StatOptions
	corpusPathVar(fs, &opts.CorpusPath)

	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: %s stat [options]\n", os.Args[0])
		_, _ = fmt.Fprintf(fs.Output(), "\nDescription:\n")
		_, _ = fmt.Fprintf(fs.Output(), "  Print corpus statistics and attribute counts.\n")
		_, _ = fmt.Fprintf(fs.Output(), "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return opts, parseErrHandled(fs, err, ui)
	}

	if opts.CorpusPath == "" {
		return opts, errors.New("no corpus path given (flag -corpus-path or SENSECOR_CORPUS_PATH)")
	}

	return opts, nil
}
