package browser

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// noisyMessages are chromedp log lines about protocol events it cannot
// unmarshal; they say nothing about the page.
var noisyMessages = []string{
	"could not unmarshal event",
	"unknown PrivateNetworkRequestPolicy",
	"unknown ClientNavigationReason",
}

// NewContext creates a browser context with appropriate options
func NewContext(parent context.Context, headless bool, logger *slog.Logger) (context.Context, context.CancelFunc) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(filteredLog(logger, slog.LevelDebug)),
		chromedp.WithErrorf(filteredLog(logger, slog.LevelWarn)),
	)

	return ctx, func() {
		cancelCtx()
		cancelAlloc()
	}
}

func filteredLog(logger *slog.Logger, level slog.Level) func(string, ...any) {
	return func(format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		if isNoise(msg) {
			return
		}
		logger.Log(context.Background(), level, msg, "component", "chromedp")
	}
}

func isNoise(msg string) bool {
	for _, n := range noisyMessages {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}
