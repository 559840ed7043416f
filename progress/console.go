package progress

import "github.com/sirupsen/logrus"

// Console logs every callback through a *logrus.Logger. Phase and
// milestone events log at Info, intermediate results and percentage
// at Debug, and warnings at Warn.
type Console struct {
	Log *logrus.Logger
}

var _ Progress = Console{}

// NewConsole returns a Console backed by logrus's standard logger.
func NewConsole() Console {
	return Console{Log: logrus.StandardLogger()}
}

func (c Console) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c Console) PhaseStart(phase string) {
	c.logger().WithField("phase", phase).Info("phase started")
}

func (c Console) PhaseComplete(phase string) {
	c.logger().WithField("phase", phase).Info("phase complete")
}

func (c Console) RecurrenceDetected(description string) {
	c.logger().WithField("recurrence", description).Info("recurrence detected")
}

func (c Console) RecurrenceSolved(description string) {
	c.logger().WithField("recurrence", description).Info("recurrence solved")
}

func (c Console) MethodAnalyzed(typeName, methodName string) {
	c.logger().WithFields(logrus.Fields{"type": typeName, "method": methodName}).Info("method analyzed")
}

func (c Console) IntermediateResult(label string, value any) {
	c.logger().WithField(label, value).Debug("intermediate result")
}

func (c Console) Warning(message string) {
	c.logger().Warn(message)
}

func (c Console) Percentage(pct float64) {
	c.logger().WithField("percent", pct).Debug("progress")
}
