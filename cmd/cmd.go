// cmd.go - Haupt-CLI Setup und Root Command
// Hauptfunktionen: NewCLI, appendEnvDocs
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/containerd/console"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/logutil"
)

// appendEnvDocs - Fuegt Umgebungsvariablen-Dokumentation zum Command hinzu
func appendEnvDocs(cmd *cobra.Command, envs []envconfig.EnvVar) {
	if len(envs) == 0 {
		return
	}

	envUsage := `
Environment Variables:
`
	for _, e := range envs {
		envUsage += fmt.Sprintf("      %-24s   %s\n", e.Name, e.Description)
	}

	cmd.SetUsageTemplate(cmd.UsageTemplate() + envUsage)
}

// NewCLI - Erstellt das Haupt-CLI mit allen Commands
func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	if runtime.GOOS == "windows" && term.IsTerminal(int(os.Stdout.Fd())) {
		console.ConsoleFromFile(os.Stdin) //nolint:errcheck
	}

	rootCmd := &cobra.Command{
		Use:           "bpe",
		Short:         "Byte-level BPE tokenizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), envconfig.LogLevel()))
		},
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				versionHandler(cmd, args)
				return
			}

			cmd.Print(cmd.UsageString())
		},
	}

	rootCmd.Flags().BoolP("version", "v", false, "Show version information")

	// Commands erstellen
	trainCmd := newTrainCmd()
	encodeCmd := newEncodeCmd()
	decodeCmd := newDecodeCmd()
	showCmd := newShowCmd()
	serveCmd := newServeCmd()

	// Environment-Dokumentation hinzufuegen
	envVars := envconfig.AsMap()

	for _, cmd := range []*cobra.Command{
		trainCmd,
		encodeCmd,
		decodeCmd,
		showCmd,
		serveCmd,
	} {
		switch cmd {
		case trainCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["BPE_DEBUG"],
				envVars["BPE_NUM_THREADS"],
				envVars["BPE_NOPROGRESS"],
			})
		case serveCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{
				envVars["BPE_DEBUG"],
				envVars["BPE_HOST"],
				envVars["BPE_MODELS"],
				envVars["BPE_ORIGINS"],
				envVars["BPE_ENCODE_CACHE"],
			})
		case encodeCmd, decodeCmd:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["BPE_HOST"], envVars["BPE_MODELS"]})
		default:
			appendEnvDocs(cmd, []envconfig.EnvVar{envVars["BPE_MODELS"]})
		}
	}

	rootCmd.AddCommand(
		trainCmd,
		encodeCmd,
		decodeCmd,
		showCmd,
		serveCmd,
	)

	return rootCmd
}
