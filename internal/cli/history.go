package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"chanedit/internal/config"
	"chanedit/internal/model"
	"chanedit/internal/storage"
)

var (
	historyLimit int
	historyRun   string
)

// historyCmd 查看提交日志
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查看本地提交日志",
	Long:  `列出最近的提交尝试（本地 journal），或用 --run 查看某次批量提交的全部条目。`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, cleanup := newEnvironment(cmd.OutOrStdout())
		defer cleanup()
		if env.journal == nil {
			return fmt.Errorf("submission journal is disabled (CHANEDIT_JOURNAL=false)")
		}
		return runHistory(cmd.Context(), env.journal, cmd.OutOrStdout(), historyRun, historyLimit, flagOutput)
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", config.DefaultHistoryLimit, "显示条数")
	historyCmd.Flags().StringVar(&historyRun, "run", "", "按 run id 过滤")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(ctx context.Context, j storage.Journal, w io.Writer, runID string, limit int, output string) error {
	var (
		recs []*model.SubmissionRecord
		err  error
	)
	if runID != "" {
		recs, err = j.ByRun(ctx, runID)
	} else {
		recs, err = j.Recent(ctx, limit)
	}
	if err != nil {
		return err
	}
	if output == "json" {
		return writeJSON(w, recs)
	}

	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			shortRun(r.RunID),
			string(r.Mode),
			idString(r.ChannelID),
			r.Name,
			strconv.Itoa(int(r.ChannelType)),
			outcomeLabel(r.Kind),
			r.Message,
		})
	}
	fmt.Fprintln(w, newTable("Time", "Run", "Mode", "ID", "Name", "Type", "Result", "Message").Rows(rows...))
	return nil
}

func shortRun(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
