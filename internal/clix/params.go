package clix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"wordtree/internal/models"
)

type AnalyzeParams struct {
	Depth   int
	Phrase  string
	Verbose bool
	Help    bool
}

/*
ParseAnalyzeArgs parses the raw analyze arguments against flags.

Only long flags defined in flags are treated as flags; their value may follow
as the next argument even when it starts with a dash. Unknown long flags are
ignored, and any other dash-led token ("-gato") is a positional argument, so a
phrase is never mistaken for a flag. A known flag without its value returns
models.ErrUsage; a value the flag cannot hold returns models.ErrInvalidArgument.
*/
func ParseAnalyzeArgs(flags *pflag.FlagSet, raw []string) (AnalyzeParams, error) {
	flagArgs, positional, err := splitArgs(flags, raw)
	if err != nil {
		return AnalyzeParams{}, err
	}
	if err := flags.Parse(flagArgs); err != nil {
		return AnalyzeParams{}, fmt.Errorf("%w: %w", models.ErrInvalidArgument, err)
	}
	if help, _ := flags.GetBool("help"); help {
		return AnalyzeParams{Help: true}, nil
	}
	return ParseAnalyzeParams(flags, positional)
}

func splitArgs(flags *pflag.FlagSet, raw []string) (flagArgs, positional []string, err error) {
	for i := 0; i < len(raw); i++ {
		arg := raw[i]
		switch {
		case arg == "--":
			return flagArgs, append(positional, raw[i+1:]...), nil
		case arg == "-h":
			if flags.Lookup("help") != nil {
				flagArgs = append(flagArgs, "--help")
			}
			continue
		case !strings.HasPrefix(arg, "--"):
			positional = append(positional, arg)
			continue
		}

		name, _, hasValue := strings.Cut(arg[2:], "=")
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if hasValue || flag.NoOptDefVal != "" {
			flagArgs = append(flagArgs, arg)
			continue
		}
		if i+1 >= len(raw) {
			return nil, nil, fmt.Errorf("%w: flag --%s needs a value", models.ErrUsage, name)
		}
		i++
		flagArgs = append(flagArgs, "--"+name+"="+raw[i])
	}
	return flagArgs, positional, nil
}

/*
ParseAnalyzeParams reads the analyze command's --depth flag and phrase argument
from an already parsed flag set.

A missing depth or phrase returns models.ErrUsage. A depth that is not an
integer returns models.ErrInvalidArgument. The phrase is the first positional
argument with surrounding whitespace trimmed.
*/
func ParseAnalyzeParams(flags *pflag.FlagSet, args []string) (AnalyzeParams, error) {
	depthFlag := flags.Lookup("depth")
	if depthFlag == nil || !depthFlag.Changed || len(args) == 0 {
		return AnalyzeParams{}, models.ErrUsage
	}

	depth, err := strconv.Atoi(strings.TrimSpace(depthFlag.Value.String()))
	if err != nil {
		return AnalyzeParams{}, fmt.Errorf("%w: depth %q is not an integer", models.ErrInvalidArgument, depthFlag.Value.String())
	}

	verbose, _ := flags.GetBool("verbose")
	return AnalyzeParams{
		Depth:   depth,
		Phrase:  strings.TrimSpace(args[0]),
		Verbose: verbose,
	}, nil
}
