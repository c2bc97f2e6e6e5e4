package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"chanedit/internal/cli"
	apperrors "chanedit/internal/errors"
)

func main() {
	// 优先读取.env文件
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[WARN] 读取 .env 失败: %v", err)
	}

	// Ctrl+C 只取消加载阶段；提交一旦开始不会被中断
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		log.Printf("❌ %s", apperrors.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
