package logger

import "github.com/sirupsen/logrus"

// DesensitizeHook masks sensitive entry fields before they are formatted.
type DesensitizeHook struct {
	d *Desensitizer
}

// NewDesensitizeHook wraps d as a logrus hook firing on all levels.
func NewDesensitizeHook(d *Desensitizer) *DesensitizeHook {
	return &DesensitizeHook{d: d}
}

func (h *DesensitizeHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *DesensitizeHook) Fire(entry *logrus.Entry) error {
	entry.Data = h.d.DesensitizeFields(entry.Data)
	return nil
}
