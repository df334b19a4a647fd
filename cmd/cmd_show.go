// cmd_show.go - Anzeige eines Models
// Hauptfunktionen: ShowHandler
package cmd

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/bpe-go/bpe/tokenizer"
)

// ShowHandler - Zeigt Muster, Vokabulargroesse und Merges eines Models
func ShowHandler(cmd *cobra.Command, args []string) error {
	tok, err := loadModel(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if vocab, _ := cmd.Flags().GetBool("vocab"); vocab {
		return tok.WriteVocab(out)
	}

	width, _ := cmd.Flags().GetInt("width")

	pattern := strconv.Quote(tok.Pattern())
	if tok.Pattern() == "" {
		pattern = "(none)"
	}

	fmt.Fprintln(out, "  Model")
	info := tablewriter.NewWriter(out)
	info.SetAlignment(tablewriter.ALIGN_LEFT)
	info.SetBorder(false)
	info.SetNoWhiteSpace(true)
	info.SetTablePadding("    ")
	info.SetAutoWrapText(false)
	info.AppendBulk([][]string{
		{"", "vocab size", strconv.Itoa(tok.VocabSize())},
		{"", "merges", strconv.Itoa(tok.Merges().Len())},
		{"", "pattern", runewidth.Truncate(pattern, 60, "…")},
	})
	info.Render()
	fmt.Fprintln(out)

	vocab := tok.Vocabulary()
	data := make([][]string, 0, tok.Merges().Len())
	for _, m := range tok.Merges().Merges() {
		token, _ := vocab.Bytes(m.ID)
		data = append(data, []string{
			strconv.Itoa(m.ID),
			strconv.Itoa(m.Pair.Left),
			strconv.Itoa(m.Pair.Right),
			runewidth.Truncate(tokenizer.RenderToken(token), width, "…"),
		})
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "LEFT", "RIGHT", "TOKEN"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)
	table.AppendBulk(data)
	table.Render()

	return nil
}
