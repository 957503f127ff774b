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

import "io"

func (o *lgr) Write(p []byte) (int, error) {
	return len(p), nil
}

func (o *lgr) Close() error {
	return nil
}

func (o *lgr) SetOutput(w io.Writer) {
	o.m.Lock()
	defer o.m.Unlock()
	o.l.SetOutput(w)
}

func (o *lgr) SetLevel(lvl Level) {
	o.m.Lock()
	defer o.m.Unlock()
	o.v = lvl
	o.l.SetLevel(lvl.Logrus())
}

func (o *lgr) GetLevel() Level {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.v
}

func (o *lgr) SetFields(f Fields) {
	o.m.Lock()
	defer o.m.Unlock()
	o.f = f
}

func (o *lgr) GetFields() Fields {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.f
}

func (o *lgr) Clone() Logger {
	o.m.RLock()
	defer o.m.RUnlock()

	return &lgr{
		l: o.l,
		v: o.v,
		f: o.f,
	}
}

func (o *lgr) newEntry(lvl Level, message string, data interface{}, err []error) *Entry {
	return &Entry{
		log:     o.getLogrus,
		Level:   lvl,
		Caller:  o.getCaller().Function,
		Message: message,
		Data:    data,
		Error:   err,
		Fields:  o.GetFields(),
	}
}

func (o *lgr) Entry(lvl Level, message string) *Entry {
	return o.newEntry(lvl, message, nil, nil)
}

func (o *lgr) Debug(message string, data interface{}) {
	o.newEntry(DebugLevel, message, data, nil).Log()
}

func (o *lgr) Info(message string, data interface{}) {
	o.newEntry(InfoLevel, message, data, nil).Log()
}

func (o *lgr) Warning(message string, data interface{}) {
	o.newEntry(WarnLevel, message, data, nil).Log()
}

func (o *lgr) Error(message string, data interface{}, err ...error) {
	o.newEntry(ErrorLevel, message, data, err).Log()
}

func (o *lgr) Fatal(message string, data interface{}, err ...error) {
	o.newEntry(FatalLevel, message, data, err).Log()
}

func (o *lgr) Panic(message string, data interface{}, err ...error) {
	o.newEntry(PanicLevel, message, data, err).Log()
}

func (o *lgr) CheckError(lvlKO, lvlOK Level, message string, err ...error) bool {
	return o.newEntry(lvlKO, message, nil, err).Check(lvlOK)
}

