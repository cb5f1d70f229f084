package logger

import (
	"context"
	"fmt"
	"sync"
	"time"

	common_models "sankhya-crm/internal/common/models"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap/zapcore"
)

// LogEntry holds the data passed from Zap to our worker
type LogEntry struct {
	Level     zapcore.Level
	Message   string
	Caller    string
	RequestId string
	LeadId    string
	UserId    string
	Error     string
}

// logSink is the part of a mongo collection the writer needs.
type logSink interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// DBLogWriter handles the async writing
type DBLogWriter struct {
	sink    logSink
	logChan chan LogEntry
	appId   string
	quit    chan struct{}
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewDBLogWriter initializes the worker
func NewDBLogWriter(sink logSink, appId string) *DBLogWriter {
	writer := &DBLogWriter{
		sink:    sink,
		logChan: make(chan LogEntry, 1000),
		appId:   appId,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	go writer.processLogs()

	return writer
}

// AddLog is called by our Zap hook. Entries logged after Close are dropped.
func (w *DBLogWriter) AddLog(entry LogEntry) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}

	select {
	case w.logChan <- entry:
	default:
		// Channel full: drop rather than block the request path
		fmt.Println("DB Log Channel Full! Dropping log:", entry.Message)
	}
}

// Close drains pending entries and stops the worker. logChan is never closed,
// so late AddLog calls stay safe.
func (w *DBLogWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.quit)
	}
	w.mu.Unlock()

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *DBLogWriter) processLogs() {
	defer close(w.done)
	for {
		select {
		case entry := <-w.logChan:
			w.insert(entry)
		case <-w.quit:
			for {
				select {
				case entry := <-w.logChan:
					w.insert(entry)
				default:
					return
				}
			}
		}
	}
}

func (w *DBLogWriter) insert(entry LogEntry) {
	logRecord := common_models.Log{
		ApplicationId: w.appId,
		Message:       entry.Message,
		Caller:        entry.Caller,
		RequestId:     entry.RequestId,
		LeadId:        entry.LeadId,
		UserId:        entry.UserId,
		Error:         entry.Error,
		LogLevelId:    mapLevelToInt(entry.Level),
		CreatedOnUtc:  time.Now().UTC(),
	}

	// Errors are ignored to keep the app running
	w.sink.InsertOne(context.Background(), logRecord)
}

func mapLevelToInt(l zapcore.Level) int {
	switch l {
	case zapcore.DebugLevel:
		return 10
	case zapcore.InfoLevel:
		return 20
	case zapcore.WarnLevel:
		return 30
	case zapcore.ErrorLevel:
		return 40
	case zapcore.FatalLevel:
		return 50
	default:
		return 20
	}
}
