package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger 全局日志实例，Init 之前为 no-op，避免早期调用崩溃
var Logger = zap.NewNop()

// Init 根据配置构建全局 Logger
func Init(level, format, output, filePath string) error {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	encoder, err := buildEncoder(format)
	if err != nil {
		return err
	}

	sink, err := buildSink(output, filePath)
	if err != nil {
		return err
	}

	core := zapcore.NewCore(encoder, sink, zapLevel)
	Logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return nil
}

func buildEncoder(format string) (zapcore.Encoder, error) {
	if format == "json" {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	}
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg), nil
}

func buildSink(output, filePath string) (zapcore.WriteSyncer, error) {
	if output == "file" {
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		return zapcore.AddSync(file), nil
	}
	return zapcore.AddSync(os.Stdout), nil
}

// Sync 刷新日志缓冲区
func Sync() {
	_ = Logger.Sync()
}

// Debug 调试日志
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info 信息日志
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn 警告日志
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Error 错误日志
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// Fatal 致命错误日志，打印后退出进程
func Fatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// With 创建带有附加字段的子 Logger
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}
