package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel определяет уровни логирования
type LogLevel int32

const (
	TRACE LogLevel = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String возвращает строковое представление уровня логирования
func (l LogLevel) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel разбирает уровень из конфигурации (регистр не важен)
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TRACE, nil
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("неизвестный уровень логирования: %q", s)
}

// Logger пишет сообщения компонента в консоль и (опционально) в файл.
// Пороги уровней меняются атомарно, логгер безопасен для конкурентного использования.
type Logger struct {
	component       string
	consoleLogger   *log.Logger
	fileLogger      *log.Logger
	file            *os.File
	minConsoleLevel atomic.Int32
	minFileLevel    atomic.Int32
}

var (
	logDirMu sync.RWMutex
	logDir   string

	defaultLogger atomic.Pointer[Logger]
)

func init() {
	defaultLogger.Store(newConsoleLogger("", os.Stdout, INFO))
}

// current возвращает глобальный логгер
func current() *Logger {
	return defaultLogger.Load()
}

// InitLogger включает запись логов в файлы в каталоге dir.
// Пустой dir оставляет только консольный вывод.
func InitLogger(dir string, level LogLevel) error {
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории %s: %w", dir, err)
		}
	}

	logDirMu.Lock()
	logDir = dir
	logDirMu.Unlock()

	logger, err := NewLogger("")
	if err != nil {
		return err
	}
	logger.SetLevel(level, TRACE)

	return defaultLogger.Swap(logger).Close()
}

// CloseLogger закрывает систему логирования
func CloseLogger() {
	current().Close()
}

// NewLogger создает логгер компонента. Если через InitLogger задан каталог,
// все уровни дополнительно пишутся в файл с временной меткой.
func NewLogger(component string) (*Logger, error) {
	l := newConsoleLogger(component, os.Stdout, INFO)

	logDirMu.RLock()
	dir := logDir
	logDirMu.RUnlock()
	if dir == "" {
		return l, nil
	}

	name := component
	if name == "" {
		name = "coords"
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s.log", name, timestamp))

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания файла логов: %w", err)
	}

	l.file = file
	l.fileLogger = log.New(file, "", log.LstdFlags)
	return l, nil
}

// NewWriterLogger создает логгер поверх произвольного writer (удобно в тестах)
func NewWriterLogger(component string, w io.Writer, level LogLevel) *Logger {
	return newConsoleLogger(component, w, level)
}

func newConsoleLogger(component string, w io.Writer, level LogLevel) *Logger {
	l := &Logger{
		component:     component,
		consoleLogger: log.New(w, "", log.LstdFlags),
	}
	l.minConsoleLevel.Store(int32(level))
	l.minFileLevel.Store(int32(TRACE))
	return l
}

// SetLevel задает пороги для консоли и файла
func (l *Logger) SetLevel(consoleLevel, fileLevel LogLevel) {
	l.minConsoleLevel.Store(int32(consoleLevel))
	l.minFileLevel.Store(int32(fileLevel))
}

// Close закрывает файл логов, если он открыт
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.fileLogger = nil
	return err
}

func (l *Logger) Trace(format string, args ...interface{}) { l.logMessage(TRACE, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.logMessage(DEBUG, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logMessage(INFO, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logMessage(WARN, format, args...) }
func (l *Logger) Error(format string, args ...interface{}) { l.logMessage(ERROR, format, args...) }

// logMessage внутренняя функция для логирования
func (l *Logger) logMessage(level LogLevel, format string, args ...interface{}) {
	if l == nil {
		return
	}

	message := fmt.Sprintf(format, args...)
	if l.component != "" {
		message = fmt.Sprintf("[%s] [%s] %s", level.String(), l.component, message)
	} else {
		message = fmt.Sprintf("[%s] %s", level.String(), message)
	}

	if l.fileLogger != nil && int32(level) >= l.minFileLevel.Load() {
		l.fileLogger.Println(message)
	}
	if int32(level) >= l.minConsoleLevel.Load() {
		l.consoleLogger.Println(message)
	}
}

// Trace логирует сообщение уровня TRACE
func Trace(format string, args ...interface{}) {
	current().logMessage(TRACE, format, args...)
}

// Debug логирует сообщение уровня DEBUG
func Debug(format string, args ...interface{}) {
	current().logMessage(DEBUG, format, args...)
}

// Info логирует сообщение уровня INFO
func Info(format string, args ...interface{}) {
	current().logMessage(INFO, format, args...)
}

// Warn логирует сообщение уровня WARN
func Warn(format string, args ...interface{}) {
	current().logMessage(WARN, format, args...)
}

// Error логирует сообщение уровня ERROR
func Error(format string, args ...interface{}) {
	current().logMessage(ERROR, format, args...)
}

// SetLevel меняет порог консольного вывода глобального логгера
func SetLevel(level LogLevel) {
	current().minConsoleLevel.Store(int32(level))
}
