package cli

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"

	"github.com/npillmayer/punycode"
	"github.com/npillmayer/punycode/ace"
	"github.com/npillmayer/punycode/namelist"
)

// tracer writes to trace with key 'punycode.cli'
func tracer() tracing.Trace {
	return tracing.Select("punycode.cli")
}

// sampleWord is the word the punycode utility has always demonstrated.
const sampleWord = "háčkyčárky"

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	root := NewRootCommand()
	root.Version = fmt.Sprintf("%s (%s)", version, commit)
	return root.Execute()
}

// NewRootCommand returns the "punycode" command with all subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "punycode",
		Short:        "Convert domain name labels to and from Punycode (RFC 3492)",
		SilenceUsage: true,
	}
	root.AddCommand(
		newEncodeCommand(),
		newDecodeCommand(),
		newToASCIICommand(),
		newToUnicodeCommand(),
		newSampleCommand(),
	)
	return root
}

func newEncodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [label...]",
		Short: "Encode labels to raw Punycode, without the xn-- prefix",
		Long: `Encode labels to raw Punycode, without the xn-- prefix.
Labels are taken from the arguments or, if there are none, from stdin,
one per line.`,
		Example: "  punycode encode bücher    # bcher-kva",
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, args, punycode.EncodeString)
		},
	}
}

func newDecodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "decode [punycode...]",
		Short:   "Decode raw Punycode, without the xn-- prefix, to UTF-8",
		Example: "  punycode decode bcher-kva    # bücher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, args, punycode.DecodeString)
		},
	}
}

func newToASCIICommand() *cobra.Command {
	var flags profileFlags
	cmd := &cobra.Command{
		Use:     "to-ascii [name...]",
		Aliases: []string{"toascii"},
		Short:   "Convert domain names to their ACE form",
		Example: "  punycode to-ascii www.bücher.example    # www.xn--bcher-kva.example",
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, args, flags.profile().ToASCII)
		},
	}
	flags.register(cmd)
	return cmd
}

func newToUnicodeCommand() *cobra.Command {
	var flags profileFlags
	cmd := &cobra.Command{
		Use:     "to-unicode [name...]",
		Aliases: []string{"tounicode"},
		Short:   "Convert domain names from their ACE form to Unicode",
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, args, flags.profile().ToUnicode)
		},
	}
	flags.register(cmd)
	return cmd
}

func newSampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the Punycode form of " + sampleWord,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return convert(cmd, []string{sampleWord}, punycode.EncodeString)
		},
	}
}

type profileFlags struct {
	nfc            bool
	noVerifyLength bool
}

func (f *profileFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.nfc, "nfc", false, "Normalize labels to Unicode NFC")
	cmd.Flags().BoolVar(&f.noVerifyLength, "no-verify-length", false, "Do not enforce the DNS label and name length limits")
}

func (f *profileFlags) profile() *ace.Profile {
	return ace.New(ace.Normalize(f.nfc), ace.VerifyLength(!f.noVerifyLength))
}

// convert applies fn to every argument, or to every name on stdin if there
// are no arguments, and prints the results one per line.
func convert(cmd *cobra.Command, args []string, fn func(string) (string, error)) error {
	if len(args) == 0 {
		tracer().Debugf("%s: reading names from stdin", cmd.Name())
		if err := namelist.Convert(cmd.InOrStdin(), cmd.OutOrStdout(), fn); err != nil {
			return fmt.Errorf("stdin: %w", err)
		}
		return nil
	}
	for _, arg := range args {
		out, err := fn(arg)
		if err != nil {
			return fmt.Errorf("cannot convert %q: %w", arg, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
