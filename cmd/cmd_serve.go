// cmd_serve.go - Server und Versionsanzeige
// Hauptfunktionen: RunServer, versionHandler, newServeCmd
package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/bpe-go/bpe/api"
	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/server"
	"github.com/bpe-go/bpe/version"
)

// RunServer - Laedt das Model und startet den Tokenizer-Server
func RunServer(_ *cobra.Command, args []string) error {
	tok, err := loadModel(args[0])
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", envconfig.Host().Host)
	if err != nil {
		return err
	}

	err = server.Serve(ln, tok)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// versionHandler - Zeigt Client- und Server-Version
func versionHandler(cmd *cobra.Command, _ []string) {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return
	}

	out := cmd.OutOrStdout()

	serverVersion, err := client.Version(cmd.Context())
	if err != nil {
		fmt.Fprintln(out, "Warning: could not connect to a running bpe server")
	}

	if serverVersion != "" {
		fmt.Fprintf(out, "bpe server version is %s\n", serverVersion)
	}

	if serverVersion != version.Version {
		fmt.Fprintf(out, "Warning: client version is %s\n", version.Version)
	}
}

// newServeCmd - Erstellt den serve Command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve MODEL",
		Aliases: []string{"start"},
		Short:   "Serve a model over HTTP",
		Args:    cobra.ExactArgs(1),
		RunE:    RunServer,
	}
}
