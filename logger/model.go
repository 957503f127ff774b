/*
 * MIT License
 *
 * Copyright (c) 2026 spantree contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package logger

import (
	"io"
	"os"
	"path"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

var self = path.Base(reflect.TypeOf(lgr{}).PkgPath())

type lgr struct {
	m sync.RWMutex
	l *logrus.Logger
	v Level
	f Fields
}

func defaultFormatter() *logrus.TextFormatter {
	return &logrus.TextFormatter{
		ForceColors:            false,
		FullTimestamp:          true,
		TimestampFormat:        time.RFC3339,
		DisableLevelTruncation: true,
		PadLevelText:           true,
		QuoteEmptyFields:       true,
	}
}

func (o *lgr) getCaller() runtime.Frame {
	pc := make([]uintptr, 16)
	n := runtime.Callers(1, pc)
	if n == 0 {
		return runtime.Frame{Function: "unknown"}
	}

	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.Function, self) {
			if !more {
				break
			}
			continue
		}
		return frame
	}

	return runtime.Frame{Function: "unknown"}
}

func (o *lgr) getLogrus() *logrus.Logger {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.l
}

// New returns a Logger writing text-formatted entries to os.Stderr at
// InfoLevel, matching the default a standalone daemon starts with before
// its configuration is read.
func New() Logger {
	l := &lgr{
		l: logrus.New(),
		f: NewFields(),
	}

	l.l.SetFormatter(defaultFormatter())
	l.SetOutput(os.Stderr)
	l.SetLevel(InfoLevel)

	return l
}

// NewTo returns a Logger identical to New but writing to w, convenient for
// tests asserting on log output.
func NewTo(w io.Writer) Logger {
	l := New().(*lgr)
	l.SetOutput(w)
	return l
}
