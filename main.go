package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

func handleError(err error) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	handleError(err)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	res, err := Generate(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "[OK] Generated: %s\n", res.Output)
	fmt.Fprintf(stdout, "[OK] Project: %s\n", res.Project.FileName())
	fmt.Fprintf(stdout, "[OK] Editor target: %s\n", res.Target.Name)
	return nil
}

func parseOptions(args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet("cleanrebuild", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts Options
	fs.StringVar(&opts.ProjectRoot, "project-root", ".", "path containing .uproject")
	fs.StringVar(&opts.Output, "output", DefaultOutput, "output batch filename, relative to the project root")
	fs.StringVar(&opts.Target, "target", "", "override editor target name (e.g. MyGameEditor)")
	fs.BoolVar(&opts.Verbose, "verbose", false, "log detection details to stderr")
	iniConfig := fs.String("config", ".cleanrebuild", "cleanrebuild config file")
	userIniConfig := fs.String("user-config", ".cleanrebuild-user", "cleanrebuild user config file")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	root, err := filepath.Abs(opts.ProjectRoot)
	if err != nil {
		return opts, err
	}
	opts.ProjectRoot = root

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fc, err := loadConfig(root, *iniConfig, *userIniConfig)
	if err != nil {
		return opts, fmt.Errorf("loading config: %w", err)
	}
	opts.applyConfig(fc, set)

	if opts.Verbose {
		log.Printf("Config: %s, %s\n", *iniConfig, *userIniConfig)
	}
	return opts, nil
}
