package logger

import (
	"fmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
}

func readLoggerProperties() (string, int, int, int, bool, string) {
	viper.SetConfigName("logger")
	viper.SetConfigType("properties")
	viper.AddConfigPath("./")

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %w \n", err))
	}

	logFilename := cast.ToString(viper.Get("logFilename"))
	maxSize := cast.ToInt(viper.Get("maxSize"))
	maxBackups := cast.ToInt(viper.Get("maxBackups"))
	maxAge := cast.ToInt(viper.Get("maxAge"))
	compressFlag := cast.ToBool(viper.Get("compress"))
	level := cast.ToString(viper.Get("level"))

	return logFilename, maxSize, maxBackups, maxAge, compressFlag, level
}

func (l Logger) Init() {

	logFilename, maxSize, maxBackups, maxAge, compressFlag, level := readLoggerProperties()

	loggerConfig := &lumberjack.Logger{
		Filename:   logFilename,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   compressFlag,
	}

	// 終端機畫面由 tcell 掌控，log 只寫檔不印到畫面
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(loggerConfig)

	switch level {

	case "Trace":
		logrus.SetLevel(logrus.TraceLevel)

	case "Info":
		logrus.SetLevel(logrus.InfoLevel)

	case "Warn":
		logrus.SetLevel(logrus.WarnLevel)

	case "Error":
		logrus.SetLevel(logrus.ErrorLevel)

	case "Fatal":
		logrus.SetLevel(logrus.FatalLevel)

	default:
		logrus.SetLevel(logrus.DebugLevel)
	}

}

func (l Logger) Info(message string) {
	logrus.Info(message)
}

func (l Logger) Error(message string) {
	logrus.Error(message)
}

func (l Logger) Debug(message string) {
	logrus.Debug(message)
}

func (l Logger) Warn(message string) {
	logrus.Warn(message)
}

func (l Logger) Fatal(message string) {
	logrus.Fatal(message)
}
