package config

import (
	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// Logger 는 애플리케이션 전역에서 사용하는 로거다.
// InitApp 이 호출되기 전에도 기본 info 레벨로 동작한다.
var Logger *slog.Logger = newLogger("info")

// InitLogger 는 설정된 레벨로 전역 로거를 교체한다.
func InitLogger(cfg LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	Logger = newLogger(level)
}

func newLogger(level string) *slog.Logger {
	logLevel := slog.LevelByName(level)

	var levels slog.Levels
	for _, lv := range slog.AllLevels {
		if lv <= logLevel {
			levels = append(levels, lv)
		}
	}

	h := handler.NewConsoleHandler(levels)
	return slog.NewWithHandlers(h)
}
