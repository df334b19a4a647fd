// cmd_tokenize.go - Encode und Decode auf der Kommandozeile
// Hauptfunktionen: EncodeHandler, DecodeHandler
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bpe-go/bpe/api"
)

// EncodeHandler - Gibt die Token-IDs eines Textes aus
func EncodeHandler(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")

	model, rest := "", args
	if !remote {
		model, rest = args[0], args[1:]
	}

	var text string
	switch len(rest) {
	case 0:
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = string(b)
	case 1:
		text = rest[0]
	default:
		return fmt.Errorf("expected a single TEXT argument, got %d; quote the text", len(rest))
	}

	var ids []int
	if remote {
		if err := checkServerHeartbeat(cmd, nil); err != nil {
			return err
		}

		client, err := api.ClientFromEnvironment()
		if err != nil {
			return err
		}

		resp, err := client.Encode(cmd.Context(), &api.EncodeRequest{Text: text})
		if err != nil {
			return err
		}
		ids = resp.IDs
	} else {
		tok, err := loadModel(model)
		if err != nil {
			return err
		}
		ids = tok.Encode(text)
	}

	fmt.Fprintln(cmd.OutOrStdout(), formatIDs(ids))
	return nil
}

// DecodeHandler - Gibt den Text zu Token-IDs aus
func DecodeHandler(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")

	model, rest := "", args
	if !remote {
		model, rest = args[0], args[1:]
	}

	ids, err := parseIDs(rest)
	if err != nil {
		return err
	}

	var text string
	if remote {
		if err := checkServerHeartbeat(cmd, nil); err != nil {
			return err
		}

		client, err := api.ClientFromEnvironment()
		if err != nil {
			return err
		}

		resp, err := client.Decode(cmd.Context(), &api.DecodeRequest{IDs: ids})
		if err != nil {
			return err
		}
		text = resp.Text
	} else {
		tok, err := loadModel(model)
		if err != nil {
			return err
		}

		text, err = tok.Decode(ids)
		if err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
