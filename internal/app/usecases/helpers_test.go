package usecases

type nopLogger struct{}

func (nopLogger) Log(string)             {}
func (nopLogger) LogError(string, error) {}
func (nopLogger) LogWarning(string)      {}
func (nopLogger) LogSuccess(string)      {}
