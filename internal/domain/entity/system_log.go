package entity

import "time"

// LogType origen de una entrada del log del sistema.
type LogType string

const (
	LogUser     LogType = "user"
	LogSystem   LogType = "system"
	LogSecurity LogType = "security"
	LogOrder    LogType = "order"
)

// LogLevel severidad de una entrada del log del sistema.
type LogLevel string

const (
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

// SystemLog entrada del log que ve el administrador. Solo se agregan, al inicio de la lista.
type SystemLog struct {
	ID        string
	Type      LogType
	Action    string
	Timestamp time.Time
	Level     LogLevel
}

// EntityID implementa collection.Identified.
func (l SystemLog) EntityID() string { return l.ID }
