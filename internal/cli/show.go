package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"chanedit/internal/model"
	"chanedit/internal/normalize"
	"chanedit/internal/registry"
	"chanedit/internal/util"
)

var showReveal bool

// showCmd 查看渠道
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "查看渠道配置",
	Long:  `从注册中心读取渠道，按编辑态展示（列表拆分、JSON缩进）。密钥默认脱敏。`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		env, cleanup := newEnvironment(cmd.OutOrStdout())
		defer cleanup()
		return runShow(cmd.Context(), env.registry, cmd.OutOrStdout(), id, flagOutput, showReveal)
	},
}

func init() {
	showCmd.Flags().BoolVar(&showReveal, "reveal", false, "显示完整密钥")
	rootCmd.AddCommand(showCmd)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid channel id %q", raw)
	}
	return id, nil
}

func runShow(ctx context.Context, reg registry.Registry, w io.Writer, id int64, output string, reveal bool) error {
	wire, err := reg.GetChannel(ctx, id)
	if err != nil {
		return err
	}
	cfg := normalize.Load(wire)
	if !reveal {
		cfg.Key = util.MaskAPIKey(cfg.Key)
	}
	if output == "json" {
		return writeJSON(w, cfg)
	}
	fmt.Fprintln(w, newTable("Field", "Value").Rows(describe(cfg)...))
	return nil
}

// describe 草稿按字段展开为表格行；只显示当前类型可见的可选字段
func describe(cfg *model.ChannelConfig) [][]string {
	defaults := util.ResolveTypeDefaults(cfg.Type)
	rows := [][]string{
		{"id", idString(cfg.ID)},
		{"name", cfg.Name},
		{"type", fmt.Sprintf("%d (%s)", cfg.Type, util.GetChannelTypeDisplayName(cfg.Type))},
		{"key", cfg.Key},
	}
	if cfg.OpenAIOrganization != "" {
		rows = append(rows, []string{"openai_organization", cfg.OpenAIOrganization})
	}
	if defaults.Has(util.CapBaseURL) || defaults.Has(util.CapProxy) {
		rows = append(rows, []string{"base_url", cfg.BaseURL})
	}
	if defaults.Has(util.CapOther) {
		rows = append(rows, []string{"other", cfg.Other})
	}
	rows = append(rows,
		[]string{"models", strings.Join(cfg.Models, "\n")},
		[]string{"groups", strings.Join(cfg.Groups, ", ")},
		[]string{"model_mapping", cfg.ModelMapping},
		[]string{"headers", cfg.Headers},
		[]string{"auto_ban", strconv.FormatBool(cfg.AutoBan)},
	)
	if defaults.Has(util.CapImageURL) {
		rows = append(rows, []string{"is_image_url_enabled", strconv.FormatBool(cfg.ImageURLEnabled)})
	}
	rows = append(rows,
		[]string{"rate_limited", strconv.FormatBool(cfg.RateLimited)},
		[]string{"priority", strconv.Itoa(cfg.Priority)},
		[]string{"weight", strconv.Itoa(cfg.Weight)},
		[]string{"tested_time", strconv.Itoa(cfg.TestedTime)},
		[]string{"model_test", cfg.ModelTest},
	)
	return rows
}

func idString(id *int64) string {
	if id == nil {
		return "-"
	}
	return strconv.FormatInt(*id, 10)
}
