// Command forge regenerates Go source from a template and context,
// three-way merging the result into any existing output file so manual
// edits survive regeneration (§6).
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/starkandwayne/goutils/ansi"
	"github.com/voxelbrain/goptions"

	"github.com/forgetool/forge/log"
	"github.com/forgetool/forge/pkg/forge"
	"github.com/forgetool/forge/pkg/forge/config"
)

// Version is stamped at release time; left at its default for source
// builds.
var Version = "(development)"

// exit is a var so tests could stub it; production always calls os.Exit.
var exit = os.Exit

type generateOpts struct {
	Template string `goptions:"-t, --template, obligatory, description='Path to the template file'"`
	Context  string `goptions:"-c, --context, obligatory, description='Path to the JSON context file'"`
	Output   string `goptions:"-o, --output, obligatory, description='Output file path'"`
	Strategy string `goptions:"-s, --strategy, description='Merge strategy: manual, template, or fail'"`
	Help     bool   `goptions:"-h, --help, description='Show this help'"`
}

type diffOpts struct {
	Template string `goptions:"-t, --template, obligatory, description='Path to the template file'"`
	Context  string `goptions:"-c, --context, obligatory, description='Path to the JSON context file'"`
	Existing string `goptions:"-e, --existing, obligatory, description='Existing file to compare against'"`
	Verbose  bool   `goptions:"-V, --verbose, description='Show the structural patch instead of a line diff'"`
	Help     bool   `goptions:"-h, --help, description='Show this help'"`
}

type checkOpts struct {
	Template string `goptions:"-t, --template, obligatory, description='Path to the template file'"`
	Context  string `goptions:"-c, --context, obligatory, description='Path to the JSON context file'"`
	Existing string `goptions:"-e, --existing, obligatory, description='Existing file to check'"`
	Help     bool   `goptions:"-h, --help, description='Show this help'"`
}

func usage() {
	goptions.PrintHelp()
	exit(1)
}

func main() {
	var options struct {
		Debug   bool   `goptions:"-D, --debug, description='Enable debugging'"`
		Trace   bool   `goptions:"-T, --trace, description='Enable trace mode debugging (very verbose)'"`
		Version bool   `goptions:"-v, --version, description='Display version information'"`
		Color   string `goptions:"--color, description='Control color output: on, off, or auto (default: auto)'"`

		Action   goptions.Verbs
		Generate generateOpts `goptions:"generate"`
		Diff     diffOpts     `goptions:"diff"`
		Check    checkOpts    `goptions:"check"`
	}

	if err := goptions.Parse(&options); err != nil {
		usage()
		return
	}

	if options.Trace {
		log.TraceOn = true
		log.DebugOn = true
	} else if options.Debug {
		log.DebugOn = true
	}

	if options.Version {
		fmt.Printf("forge - version %s\n", Version)
		return
	}

	switch options.Color {
	case "on":
		ansi.Color(true)
	case "off":
		ansi.Color(false)
	case "auto", "":
		ansi.Color(isatty.IsTerminal(os.Stderr.Fd()))
	default:
		log.PrintfStdErr("invalid --color option: %s (want on, off, or auto)\n", options.Color)
		exit(1)
		return
	}

	cfgPath := os.Getenv("FORGE_CONFIG")
	if cfgPath == "" {
		cfgPath = ".forge.yaml"
	}
	cfg, err := config.NewLoader().Load(cfgPath)
	if err != nil {
		log.PrintfStdErr("loading config: %v\n", err)
		exit(1)
		return
	}

	switch options.Action {
	case "generate":
		runGenerate(options.Generate, cfg)
	case "diff":
		runDiff(options.Diff)
	case "check":
		runCheck(options.Check)
	default:
		usage()
	}
}

func runGenerate(opts generateOpts, cfg config.Config) {
	if opts.Help {
		usage()
		return
	}

	strategyName := opts.Strategy
	if strategyName == "" {
		strategyName = cfg.DefaultStrategy
	}
	strategy, err := forge.ParseStrategy(strategyName)
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	ctx, err := forge.LoadContext(opts.Context)
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	result, err := forge.Generate(forge.GenerateRequest{
		TemplatePath: opts.Template,
		Context:      ctx,
		OutputPath:   opts.Output,
		Strategy:     strategy,
	})
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	fmt.Printf("%s Generated code written to: %s\n", ansi.Sprintf("@G{✓}"), opts.Output)
	for _, c := range result.Conflicts {
		log.PrintfStdErr("warning: %s\n", c.Message)
	}
}

func runDiff(opts diffOpts) {
	if opts.Help {
		usage()
		return
	}

	ctx, err := forge.LoadContext(opts.Context)
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	out, err := forge.ShowDiff(forge.DiffRequest{
		TemplatePath: opts.Template,
		Context:      ctx,
		ExistingPath: opts.Existing,
		Verbose:      opts.Verbose,
	})
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}
	fmt.Println(out)
}

func runCheck(opts checkOpts) {
	if opts.Help {
		usage()
		return
	}

	ctx, err := forge.LoadContext(opts.Context)
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	conflicts, err := forge.CheckConflicts(forge.CheckRequest{
		TemplatePath: opts.Template,
		Context:      ctx,
		ExistingPath: opts.Existing,
	})
	if err != nil {
		log.PrintfStdErr("%v\n", err)
		exit(1)
		return
	}

	if len(conflicts) == 0 {
		fmt.Println(ansi.Sprintf("@G{✓} No conflicts detected. Safe to merge."))
		return
	}

	fmt.Println(ansi.Sprintf("@Y{⚠} Conflicts detected:"))
	for _, c := range conflicts {
		fmt.Printf("  - %s\n", c.Message)
	}
	exit(1)
}
