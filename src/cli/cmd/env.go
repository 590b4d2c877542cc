package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/sofmeright/lintcompose/src/lint/topics"

	"github.com/sofmeright/lintcompose/src/detect"
	"github.com/sofmeright/lintcompose/src/lint"
	"github.com/sofmeright/lintcompose/src/log"
)

// selection holds the flags shared by every command that composes.
type selection struct {
	root    string
	enable  []string
	disable []string
	assume  []string
}

func (s *selection) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&s.root, "root", "", "project directory used for auto-detection (default: config root, then cwd)")
	flags.StringSliceVar(&s.enable, "enable", nil, "force topics on (comma-separated)")
	flags.StringSliceVar(&s.disable, "disable", nil, "force topics off (comma-separated)")
	flags.StringSliceVar(&s.assume, "assume", nil, "treat packages as installed (comma-separated)")
}

// projectDir picks the detection root: flag, then config, then cwd.
func (s *selection) projectDir() (string, error) {
	switch {
	case s.root != "":
		return s.root, nil
	case cfg != nil && cfg.Root != "":
		return cfg.Root, nil
	default:
		return os.Getwd()
	}
}

// environment layers --assume over the on-disk project.
func (s *selection) environment() (detect.Environment, *detect.Project, error) {
	dir, err := s.projectDir()
	if err != nil {
		return nil, nil, err
	}
	project, err := detect.Open(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening project %s: %w", dir, err)
	}

	layers := detect.Layered{}
	if len(s.assume) > 0 {
		layers = append(layers, detect.Assume(s.assume...))
	}
	layers = append(layers, project)
	return detect.Memoize(layers), project, nil
}

// options merges --enable/--disable over the loaded config.
func (s *selection) options() (lint.Options, error) {
	opts := cfg.Options()
	for _, name := range s.enable {
		name = strings.TrimSpace(name)
		if !lint.Known(name) {
			return opts, fmt.Errorf("--enable %s: unknown topic", name)
		}
		// Keep configured overrides when the config already enables it.
		if t := opts.Toggle(name); t.Enabled() {
			continue
		}
		opts.Set(name, lint.Enable())
	}
	for _, name := range s.disable {
		name = strings.TrimSpace(name)
		if !lint.Known(name) {
			return opts, fmt.Errorf("--disable %s: unknown topic", name)
		}
		opts.Set(name, lint.Disable())
	}
	return opts, nil
}

func (s *selection) composer() (*lint.Composer, lint.Options, error) {
	opts, err := s.options()
	if err != nil {
		return nil, opts, err
	}
	env, _, err := s.environment()
	if err != nil {
		return nil, opts, err
	}
	return lint.NewComposer(env, log.WithComponent("compose")), opts, nil
}

// writeTo runs write against path, or against the command's stdout when
// path is empty. A failed close is reported: it can lose buffered output.
func writeTo(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
