package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chanedit/internal/util"
)

// typesCmd 列出渠道类型
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "列出支持的渠道类型",
	Long:  `列出所有已登记的渠道类型，包括默认地址、默认模型、密钥格式提示与可选字段。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTypes(cmd.OutOrStdout(), flagOutput)
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}

func runTypes(w io.Writer, output string) error {
	types := util.ListChannelTypes()
	if output == "json" {
		return writeJSON(w, types)
	}

	rows := make([][]string, 0, len(types))
	for _, t := range types {
		prompt := t.KeyPrompt
		if prompt == "" {
			prompt = "-"
		}
		rows = append(rows, []string{
			strconv.Itoa(int(t.Type)),
			t.DisplayName,
			orDash(t.DefaultBaseURL),
			orDash(strings.Join(t.DefaultModels, ", ")),
			prompt,
			strings.Join(util.CapabilityNames(t.Capabilities), ","),
		})
	}
	fmt.Fprintln(w, newTable("Type", "Name", "Default Base URL", "Default Models", "Key Format", "Fields").Rows(rows...))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
