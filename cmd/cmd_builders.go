// cmd_builders.go - Command-Builder Funktionen
// Hauptfunktionen: newTrainCmd, newEncodeCmd, newDecodeCmd, newShowCmd
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newTrainCmd - Erstellt den train Command
func newTrainCmd() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train -o PREFIX CORPUS...",
		Short: "Learn merges from text files",
		Long: `Learn merges from the given files or directories. Directories are read
recursively in lexical order; "-" reads standard input. The result is written
to PREFIX.model and PREFIX.vocab.`,
		Args: cobra.MinimumNArgs(1),
		RunE: TrainHandler,
	}

	trainCmd.Flags().Int("vocab-size", 512, "Target vocabulary size (at least 256)")
	trainCmd.Flags().String("pattern", "", "Split pattern applied to the corpus before counting pairs")
	trainCmd.Flags().Bool("gpt2", false, "Use the GPT-2 split pattern")
	trainCmd.Flags().Bool("gpt4", false, "Use the GPT-4 split pattern")
	trainCmd.Flags().Bool("verbose", false, "Log every merge")
	trainCmd.Flags().StringP("output", "o", "", "Output prefix for the .model and .vocab files")
	trainCmd.MarkFlagsMutuallyExclusive("pattern", "gpt2", "gpt4")
	trainCmd.MarkFlagRequired("output") //nolint:errcheck

	return trainCmd
}

// remoteArgs - Ohne --remote ist MODEL das erste Argument
func remoteArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if remote, _ := cmd.Flags().GetBool("remote"); remote {
			return nil
		}
		if len(args) < n {
			return fmt.Errorf("requires a MODEL argument unless --remote is set")
		}
		return nil
	}
}

// newEncodeCmd - Erstellt den encode Command
func newEncodeCmd() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:   "encode MODEL [TEXT]",
		Short: "Convert text to token ids",
		Long: `Convert TEXT to token ids. Standard input is read when TEXT is missing.
With --remote the running server's tokenizer is used and MODEL is omitted.`,
		Args: remoteArgs(1),
		RunE: EncodeHandler,
	}

	encodeCmd.Flags().Bool("remote", false, "Encode with the server at BPE_HOST")

	return encodeCmd
}

// newDecodeCmd - Erstellt den decode Command
func newDecodeCmd() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:   "decode MODEL ID...",
		Short: "Convert token ids to text",
		Args:  remoteArgs(2),
		RunE:  DecodeHandler,
	}

	decodeCmd.Flags().Bool("remote", false, "Decode with the server at BPE_HOST")

	return decodeCmd
}

// newShowCmd - Erstellt den show Command
func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show MODEL",
		Short: "Show the merges of a model",
		Args:  cobra.ExactArgs(1),
		RunE:  ShowHandler,
	}

	showCmd.Flags().Bool("vocab", false, "Print the human readable vocabulary instead of a table")
	showCmd.Flags().Int("width", 32, "Maximum display width of a token")

	return showCmd
}
