// cmd_utils.go - Gemeinsame Hilfsfunktionen
// Hauptfunktionen: resolveModel, loadModel, parseIDs, formatIDs, checkServerHeartbeat
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bpe-go/bpe/api"
	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/tokenizer"
)

// resolveModel - Sucht eine Model-Datei zuerst als Pfad, dann in BPE_MODELS.
// Die Endung .model darf fehlen.
func resolveModel(name string) (string, error) {
	candidates := []string{name, name + ".model"}
	if !filepath.IsAbs(name) {
		dir := envconfig.Models()
		candidates = append(candidates, filepath.Join(dir, name), filepath.Join(dir, name+".model"))
	}

	for _, p := range candidates {
		if fi, err := os.Stat(p); err == nil && fi.Mode().IsRegular() {
			return p, nil
		}
	}

	return "", fmt.Errorf("model %q not found: %w", name, fs.ErrNotExist)
}

// loadModel - Loest den Namen auf und laedt den Tokenizer
func loadModel(name string) (*tokenizer.Tokenizer, error) {
	p, err := resolveModel(name)
	if err != nil {
		return nil, err
	}
	return tokenizer.LoadFile(p)
}

// parseIDs - Wandelt Argumente in Token-IDs um
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("invalid token id %q", field)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// formatIDs - Gibt IDs durch Leerzeichen getrennt aus
func formatIDs(ids []int) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}

// checkServerHeartbeat - Prueft ob der Server erreichbar ist
func checkServerHeartbeat(cmd *cobra.Command, _ []string) error {
	client, err := api.ClientFromEnvironment()
	if err != nil {
		return err
	}
	if err := client.Heartbeat(cmd.Context()); err != nil {
		var se api.StatusError
		if errors.As(err, &se) {
			return err
		}
		return fmt.Errorf("bpe server not responding at %s, start it with 'bpe serve MODEL' - %w", envconfig.Host(), err)
	}
	return nil
}
