// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package client

import (
	"strings"

	"github.com/H0llyW00dzZ/apictl/src/logger"
	"github.com/go-resty/resty/v2"
)

// restyLogger routes resty's internal messages into a [logger.Logger].
type restyLogger struct {
	log logger.Logger
}

var _ resty.Logger = restyLogger{}

func (l restyLogger) Errorf(format string, v ...any) { l.printf("ERROR", format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.printf("WARN", format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.printf("DEBUG", format, v...) }

func (l restyLogger) printf(level, format string, v ...any) {
	l.log.Printf("resty "+level+": "+strings.TrimRight(format, "\n"), v...)
}
