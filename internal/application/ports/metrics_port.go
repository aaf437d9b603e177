package ports

// MetricsRecorder define el puerto de salida para las métricas de negocio.
type MetricsRecorder interface {
	LoginRecorded(role string)
	TransitionRecorded(dashboard, action string)
}

// NopMetrics descarta todas las métricas (tests).
type NopMetrics struct{}

func (NopMetrics) LoginRecorded(string)              {}
func (NopMetrics) TransitionRecorded(string, string) {}
