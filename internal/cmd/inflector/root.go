package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-courier/logr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/octohelm/inflector/pkg/config"
	"github.com/octohelm/inflector/pkg/inflect"
	"github.com/octohelm/inflector/pkg/inflector"
	"github.com/octohelm/inflector/pkg/logger"
)

// errFalse makes `is` exit non zero without printing an error.
var errFalse = errors.New("false")

type options struct {
	ConfigFile string
	Acronyms   string
	LogLevel   string
	Recursive  bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	c := inflect.New()

	root := &cobra.Command{
		Use:           "inflector",
		Short:         "Convert words between naming conventions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd, c)
		},
	}

	root.PersistentFlags().StringVar(&o.ConfigFile, "config", "", "config file (.toml, .yaml); default from $"+config.EnvConfig)
	root.PersistentFlags().StringVar(&o.Acronyms, "acronyms", "", "comma separated acronyms, e.g. API,URL")
	root.PersistentFlags().StringVar(&o.LogLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		newToCmd(c),
		newIsCmd(c),
		newKeysCmd(c, o),
		newFormatsCmd(),
		newWordCmd("plural", "Plural form of words", inflector.Pluralize),
		newWordCmd("singular", "Singular form of words", inflector.Singularize),
		newWordCmd("ordinalize", "Ordinal form of numbers (1 -> 1st)", inflector.Ordinalize),
		newWordCmd("deordinalize", "Strip ordinal suffixes (1st -> 1)", inflector.Deordinalize),
		newWordCmd("demodulize", "Last segment of qualified names", inflector.Demodulize),
		newWordCmd("deconstantize", "Parent segment of qualified names", inflector.Deconstantize),
	)

	return root
}

func (o *options) setup(cmd *cobra.Command, c *inflect.Converter) error {
	var cfg *config.Config

	if o.ConfigFile != "" {
		loaded, err := config.Load(o.ConfigFile)
		if err != nil {
			return err
		}
		loaded.ApplyEnv()
		cfg = loaded
	} else {
		loaded, err := config.FromEnv()
		if err != nil {
			return err
		}
		cfg = loaded
	}

	if o.Acronyms != "" {
		cfg.Acronyms = strings.Split(o.Acronyms, ",")
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	l := logger.New(cmd.ErrOrStderr(), level)

	c.Acronyms().SetList(cfg.Acronyms)
	l.Debug("acronyms %q", c.Acronyms().Get())

	cmd.SetContext(logger.WithLogger(cmd.Context(), l))

	return nil
}

func newToCmd(c *inflect.Converter) *cobra.Command {
	return &cobra.Command{
		Use:   "to <format> [words...]",
		Short: "Convert words, or lines of stdin, to the format",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := c.Transformer(args[0])
			if err != nil {
				return err
			}
			return eachWord(cmd, args[1:], fn)
		},
	}
}

func newIsCmd(c *inflect.Converter) *cobra.Command {
	return &cobra.Command{
		Use:   "is <format> <word>",
		Short: "Check whether the word is already in the format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			is, err := c.Predicate(args[0])
			if err != nil {
				return err
			}

			ok := is(args[1])
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ok)

			if !ok {
				return errFalse
			}
			return nil
		},
	}
}

func newKeysCmd(c *inflect.Converter, o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <format>",
		Short: "Rename the object keys of the JSON document on stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, l := logr.FromContext(cmd.Context()).Start(cmd.Context(), "keys", "format", args[0])
			defer l.End()
			cmd.SetContext(ctx)

			var doc any
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&doc); err != nil {
				return errors.Wrap(err, "decode json")
			}

			renamed, err := c.InflectKeys(args[0], doc, o.Recursive)
			if err != nil {
				return err
			}

			e := json.NewEncoder(cmd.OutOrStdout())
			e.SetIndent("", "  ")
			return e.Encode(renamed)
		},
	}

	cmd.Flags().BoolVarP(&o.Recursive, "recursive", "r", false, "rename keys of nested objects too")

	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range inflect.Formats() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		},
	}
}

func newWordCmd(use string, short string, fn inflect.Transform) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [words...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachWord(cmd, args, fn)
		},
	}
}

// eachWord prints fn of every word, reading lines of stdin when words is empty.
func eachWord(cmd *cobra.Command, words []string, fn inflect.Transform) error {
	w := cmd.OutOrStdout()

	if len(words) > 0 {
		for _, word := range words {
			_, _ = fmt.Fprintln(w, fn(word))
		}
		return nil
	}

	return eachLine(cmd.InOrStdin(), func(line string) {
		_, _ = fmt.Fprintln(w, fn(line))
	})
}

func eachLine(r io.Reader, fn func(line string)) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		fn(s.Text())
	}
	return errors.Wrap(s.Err(), "read stdin")
}
